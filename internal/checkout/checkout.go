// Package checkout sequences the placement of an order: snapshot the
// cart, submit it, and on confirmation record it locally and empty the
// cart. A failed submission leaves every piece of session state exactly
// as it was; the user retries by placing the order again.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"food-court/internal/model"
	"food-court/internal/notify"
	"food-court/internal/session"

	"github.com/rs/zerolog"
)

// StaffTopic is the push topic staff devices subscribe to for new-order
// notifications.
const StaffTopic = "staff"

// OrderPlacer is the slice of the remote API the checkout flow uses.
// Satisfied by api.Client.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (int64, error)
}

// Service orchestrates checkout against the remote API.
type Service struct {
	client     OrderPlacer
	dispatcher notify.Dispatcher
	logger     zerolog.Logger
}

// NewService creates a new checkout service.
func NewService(client OrderPlacer, dispatcher notify.Dispatcher, logger zerolog.Logger) *Service {
	return &Service{
		client:     client,
		dispatcher: dispatcher,
		logger:     logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder submits the session's cart as a new order. On success the
// confirmed order (carrying the server-assigned ID) is appended to the
// session's order log, the cart is cleared, and a new-order event is
// dispatched to staff. On any failure the cart and log are untouched and
// the classified error is returned for display. This is an at-most-once
// attempt: there is no idempotency key, so retrying after a timeout can
// duplicate the order remotely.
func (s *Service) PlaceOrder(ctx context.Context, sess *session.Session) (model.Order, error) {
	c := sess.Cart()
	if c.Len() == 0 {
		return model.Order{}, model.ErrEmptyCart
	}

	profile := sess.Profile()
	snapshot := model.PlaceOrderRequest{
		UserEmail:   profile.Email,
		UserName:    profile.Name,
		UserPhone:   profile.Phone,
		Items:       summarise(c.Items()),
		TotalAmount: model.Amount(c.Total()),
		Status:      model.StatusPending,
	}

	orderID, err := s.client.PlaceOrder(ctx, snapshot)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("user_name", profile.Name).
			Int("item_count", c.Len()).
			Msg("order placement failed")
		return model.Order{}, fmt.Errorf("checkout: %w", err)
	}

	order := model.Order{
		ID:          orderID,
		UserEmail:   snapshot.UserEmail,
		UserName:    snapshot.UserName,
		UserPhone:   snapshot.UserPhone,
		Items:       snapshot.Items,
		TotalAmount: snapshot.TotalAmount,
		Status:      snapshot.Status,
	}

	sess.Orders().Append(order)
	c.Clear()

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("total", order.TotalAmount.String()).
		Msg("order placed")

	s.notifyStaff(ctx, order)

	return order, nil
}

// notifyStaff emits the new-order event. Delivery is best-effort; a
// gateway failure is logged and swallowed so it cannot fail a checkout
// the server already confirmed.
func (s *Service) notifyStaff(ctx context.Context, order model.Order) {
	event := notify.NewEvent(
		notify.KindOrderPlaced,
		order.ID,
		"New Order Received",
		fmt.Sprintf("New order from %s.", order.UserName),
	)
	event.Topic = StaffTopic

	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("order_id", order.ID).
			Msg("staff notification failed")
	}
}

// summarise flattens cart lines into the textual summary the remote
// stores with the order, e.g. "Dosa x 2, Chai x 1".
func summarise(items []model.LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s x %d", item.Name, item.Quantity)
	}
	return strings.Join(parts, ", ")
}
