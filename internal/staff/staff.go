// Package staff implements the staff-side mutations: deciding pending
// orders and toggling menu-item availability. Both write through the
// remote API; deciding an order additionally notifies the customer.
package staff

import (
	"context"
	"fmt"

	"food-court/internal/model"
	"food-court/internal/notify"

	"github.com/rs/zerolog"
)

// API is the slice of the remote client the staff service uses.
// Satisfied by api.Client.
type API interface {
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	SetItemAvailability(ctx context.Context, itemID int64, available bool) error
}

// Service exposes staff operations over the remote API.
type Service struct {
	client     API
	dispatcher notify.Dispatcher
	logger     zerolog.Logger
}

// NewService creates a new staff service.
func NewService(client API, dispatcher notify.Dispatcher, logger zerolog.Logger) *Service {
	return &Service{
		client:     client,
		dispatcher: dispatcher,
		logger:     logger.With().Str("service", "staff").Logger(),
	}
}

// Decide accepts or rejects a pending order. The status change is written
// through the API first; only a confirmed change notifies the customer's
// device. Notification failures are logged, never returned: the decision
// already happened.
func (s *Service) Decide(ctx context.Context, order model.Order, status model.OrderStatus) error {
	if status != model.StatusAccepted && status != model.StatusRejected {
		return model.ErrInvalidStatus
	}

	if err := s.client.UpdateOrderStatus(ctx, order.ID, status); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("order_id", order.ID).
			Str("status", string(status)).
			Msg("order decision failed")
		return fmt.Errorf("decide order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("status", string(status)).
		Msg("order decided")

	s.notifyCustomer(ctx, order, status)
	return nil
}

// SetAvailability toggles a menu item on or off.
func (s *Service) SetAvailability(ctx context.Context, itemID int64, available bool) error {
	if err := s.client.SetItemAvailability(ctx, itemID, available); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("item_id", itemID).
			Msg("availability update failed")
		return fmt.Errorf("set availability: %w", err)
	}
	return nil
}

func (s *Service) notifyCustomer(ctx context.Context, order model.Order, status model.OrderStatus) {
	if order.UserToken == "" {
		s.logger.Debug().Int64("order_id", order.ID).Msg("no device token, skipping notification")
		return
	}

	event := notify.NewEvent(
		notify.KindStatusChanged,
		order.ID,
		"Order Status Update",
		fmt.Sprintf("Your order has been %s!", status),
	)
	event.Token = order.UserToken

	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Int64("order_id", order.ID).
			Msg("customer notification failed")
	}
}
