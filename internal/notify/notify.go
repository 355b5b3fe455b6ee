// Package notify decouples push-notification delivery from the state
// transitions that cause it. Checkout and staff operations emit events;
// a Dispatcher decides how (and whether) they reach a device.
package notify

import (
	"context"

	"github.com/google/uuid"
)

// EventKind identifies what happened.
type EventKind string

const (
	// KindOrderPlaced fires when a checkout succeeds; delivered to the
	// staff topic.
	KindOrderPlaced EventKind = "order_placed"

	// KindStatusChanged fires when staff accept or reject an order;
	// delivered to the ordering user's device.
	KindStatusChanged EventKind = "status_changed"
)

// Event is one notification-worthy state transition.
type Event struct {
	ID      uuid.UUID
	Kind    EventKind
	OrderID int64
	Title   string
	Body    string

	// Topic is set for broadcast events (staff notifications); Token for
	// events addressed to a single device. Exactly one is non-empty.
	Topic string
	Token string
}

// NewEvent creates an event with a fresh ID.
func NewEvent(kind EventKind, orderID int64, title, body string) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    kind,
		OrderID: orderID,
		Title:   title,
		Body:    body,
	}
}

// Dispatcher delivers events. Delivery is best-effort: a failed dispatch
// must never undo or fail the state transition that produced the event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

// NopDispatcher discards every event. Used in tests and in deployments
// without a push gateway.
type NopDispatcher struct{}

// Dispatch discards the event.
func (NopDispatcher) Dispatch(ctx context.Context, event Event) error {
	return nil
}
