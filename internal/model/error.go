package model

// ErrorResponse represents a standardised error response from the remote API.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes surfaced by the client
const (
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeRejected           = "REJECTED_BY_SERVER"
	ErrCodeOrderRejected      = "ORDER_REJECTED"
	ErrCodeUnavailable        = "SERVICE_UNAVAILABLE"
	ErrCodeUnexpected         = "UNEXPECTED_ERROR"
)

// DomainError is a classified failure carrying a stable code alongside the
// user-displayable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must not be negative")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid ID or password")
	ErrOrderRejected      = NewDomainError(ErrCodeOrderRejected, "Order was rejected by the server")
	ErrServiceUnavailable = NewDomainError(ErrCodeUnavailable, "No response from server. Check the network connection")
)
