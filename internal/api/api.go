// Package api implements the HTTP client for the remote food-ordering
// service. All persistence and business rules live behind this boundary;
// the client translates transport and server failures into the domain
// error taxonomy so callers can show a meaningful message.
package api

import (
	"context"

	"food-court/internal/model"
)

// Client defines the operations the remote service exposes.
type Client interface {
	// Login authenticates a user and returns the profile snapshot.
	Login(ctx context.Context, userID, password string) (model.Profile, error)

	// Signup registers a new user account.
	Signup(ctx context.Context, req model.SignupRequest) error

	// Restaurants retrieves the restaurant listings.
	Restaurants(ctx context.Context) ([]model.Restaurant, error)

	// FoodItems retrieves the full menu, including unavailable items.
	FoodItems(ctx context.Context) ([]model.FoodItem, error)

	// PlaceOrder submits a new order and returns the server-assigned ID.
	PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (int64, error)

	// Orders retrieves all orders known to the remote system.
	Orders(ctx context.Context) ([]model.Order, error)

	// UpdateOrderStatus sets the status of an existing order.
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// SetItemAvailability toggles a menu item on or off.
	SetItemAvailability(ctx context.Context, itemID int64, available bool) error
}
