package model

import "encoding/json"

// OrderStatus is the staff-controlled state of a placed order.
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusAccepted OrderStatus = "accepted"
	StatusRejected OrderStatus = "rejected"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Order is one placed order. ID is assigned by the remote system; the
// client never generates it. The profile fields and TotalAmount are a
// snapshot taken at placement time and are never recomputed.
type Order struct {
	ID          int64       `json:"id"`
	UserEmail   string      `json:"user_email"`
	UserName    string      `json:"user_name"`
	UserPhone   string      `json:"user_phone"`
	Items       string      `json:"items"`
	TotalAmount Amount      `json:"total_amount"`
	Status      OrderStatus `json:"status"`

	// UserToken is the push token of the device that placed the order,
	// present only on staff-side reads.
	UserToken string `json:"user_fcm_token,omitempty"`
}

// UnmarshalJSON decodes an order, accepting the remote's drifting key for
// the total: order listings use total_amount while the placement echo uses
// totalAmount. The snake_case key wins when both are present.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		AltTotal *Amount `json:"totalAmount"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if o.TotalAmount == 0 && aux.AltTotal != nil {
		o.TotalAmount = *aux.AltTotal
	}
	return nil
}

// PlaceOrderRequest is the payload submitted to the place-order endpoint.
// The remote expects camelCase keys here even though it returns snake_case
// on reads.
type PlaceOrderRequest struct {
	UserEmail   string      `json:"userEmail"`
	UserName    string      `json:"userName"`
	UserPhone   string      `json:"userPhone"`
	Items       string      `json:"items"`
	TotalAmount Amount      `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// PlaceOrderResponse is the remote reply to a place-order request.
type PlaceOrderResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"orderId"`
	Error   string `json:"error,omitempty"`
}
