package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"food-court/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// client implements Client over HTTP.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new remote API client. Every request is bounded by
// the given timeout; a call that never resolves surfaces as
// ErrServiceUnavailable instead of hanging the caller.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) Client {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// Login authenticates a user and returns the profile snapshot.
func (c *client) Login(ctx context.Context, userID, password string) (model.Profile, error) {
	req := model.LoginRequest{UserID: userID, Password: password}

	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return model.Profile{}, fmt.Errorf("login: %w", err)
	}

	if !resp.Success {
		c.logger.Warn().Str("user_id", userID).Msg("login rejected")
		return model.Profile{}, model.ErrInvalidCredentials
	}

	c.logger.Info().Str("user_id", resp.User.ID).Msg("login succeeded")
	return resp.User, nil
}

// Signup registers a new user account.
func (c *client) Signup(ctx context.Context, req model.SignupRequest) error {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", req, &resp); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Error signing up. Please try again"
		}
		return model.NewDomainError(model.ErrCodeRejected, msg)
	}

	c.logger.Info().Str("user_id", req.UserID).Msg("signup succeeded")
	return nil
}

// Restaurants retrieves the restaurant listings.
func (c *client) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants", nil, &restaurants); err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}
	return restaurants, nil
}

// FoodItems retrieves the full menu, including unavailable items.
func (c *client) FoodItems(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := c.do(ctx, http.MethodGet, "/food-items", nil, &items); err != nil {
		return nil, fmt.Errorf("fetch food items: %w", err)
	}
	return items, nil
}

// PlaceOrder submits a new order and returns the server-assigned ID.
// There is no idempotency key: a retry after a timeout can create a
// duplicate order on the remote system.
func (c *client) PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (int64, error) {
	var resp model.PlaceOrderResponse
	if err := c.do(ctx, http.MethodPost, "/place-order", req, &resp); err != nil {
		return 0, fmt.Errorf("place order: %w", err)
	}

	if !resp.Success {
		c.logger.Warn().Str("user_name", req.UserName).Msg("order rejected by server")
		return 0, model.ErrOrderRejected
	}

	c.logger.Info().
		Int64("order_id", resp.OrderID).
		Str("total", req.TotalAmount.String()).
		Msg("order placed")
	return resp.OrderID, nil
}

// Orders retrieves all orders known to the remote system.
func (c *client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets the status of an existing order.
func (c *client) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.Valid() {
		return model.ErrInvalidStatus
	}

	body := struct {
		Status model.OrderStatus `json:"status"`
	}{Status: status}

	path := fmt.Sprintf("/orders/%d", orderID)
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}

	c.logger.Info().
		Int64("order_id", orderID).
		Str("status", string(status)).
		Msg("order status updated")
	return nil
}

// SetItemAvailability toggles a menu item on or off.
func (c *client) SetItemAvailability(ctx context.Context, itemID int64, available bool) error {
	body := struct {
		Available bool `json:"available"`
	}{Available: available}

	path := fmt.Sprintf("/food-items/%d", itemID)
	if err := c.do(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("update item %d availability: %w", itemID, err)
	}

	c.logger.Info().
		Int64("item_id", itemID).
		Bool("available", available).
		Msg("item availability updated")
	return nil
}

// do performs one request against the remote API. A nil body sends no
// payload; a nil out discards the response body. Transport failures map
// to ErrServiceUnavailable, 4xx responses to a DomainError built from the
// server's error body, and 5xx responses to an unexpected DomainError.
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	correlationID := uuid.NewString()
	req.Header.Set("X-Correlation-ID", correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("correlation_id", correlationID).
			Msg("request failed")
		return classify(err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("correlation_id", correlationID).
		Msg("request completed")

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp, correlationID)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-success response into a domain error. The
// server's error body is preferred for the message; an undecodable body
// falls back to the HTTP status text.
func (c *client) decodeError(resp *http.Response, correlationID string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp model.ErrorResponse
	message := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("message", message).
		Str("correlation_id", correlationID).
		Msg("server returned error")

	if resp.StatusCode >= http.StatusInternalServerError {
		return model.NewDomainError(model.ErrCodeUnexpected, message)
	}
	return model.NewDomainError(model.ErrCodeRejected, message)
}

// classify maps a transport-level failure to the connectivity sentinel
// while keeping the underlying cause in the message.
func classify(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%w: %v", model.ErrServiceUnavailable, uerr.Err)
	}
	return err
}
