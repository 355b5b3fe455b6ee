// Package menu provides the customer-facing reads over the remote
// catalogue: restaurant listings and the currently orderable menu.
package menu

import (
	"context"
	"fmt"

	"food-court/internal/model"

	"github.com/rs/zerolog"
)

// API is the slice of the remote client the menu service uses.
// Satisfied by api.Client.
type API interface {
	Restaurants(ctx context.Context) ([]model.Restaurant, error)
	FoodItems(ctx context.Context) ([]model.FoodItem, error)
}

// Service fetches menu data for display.
type Service struct {
	client API
	logger zerolog.Logger
}

// NewService creates a new menu service.
func NewService(client API, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// Restaurants returns the restaurant listings.
func (s *Service) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.client.Restaurants(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch restaurants")
		return nil, fmt.Errorf("restaurants: %w", err)
	}

	s.logger.Debug().Int("count", len(restaurants)).Msg("fetched restaurants")
	return restaurants, nil
}

// AvailableItems returns the orderable subset of the menu, in catalogue
// order. Unavailable items are filtered out here so screens never have to
// re-check the flag.
func (s *Service) AvailableItems(ctx context.Context) ([]model.FoodItem, error) {
	items, err := s.client.FoodItems(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch food items")
		return nil, fmt.Errorf("food items: %w", err)
	}

	available := make([]model.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}

	s.logger.Debug().
		Int("total", len(items)).
		Int("available", len(available)).
		Msg("fetched food items")
	return available, nil
}
