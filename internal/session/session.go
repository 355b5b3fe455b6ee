// Package session ties one signed-in user to the state that belongs to
// them. It replaces the application-wide mutable profile the UI layer
// would otherwise reach for: every component that needs identity is handed
// a session explicitly.
package session

import (
	"food-court/internal/cart"
	"food-court/internal/model"
	"food-court/internal/orderlog"
)

// Session owns the cart, order log and profile snapshot for one signed-in
// user. It lives from login until the process ends and is never persisted.
type Session struct {
	profile model.Profile
	cart    *cart.Cart
	orders  *orderlog.Log
}

// New creates a session for the given profile with an empty cart and
// order log.
func New(profile model.Profile) *Session {
	return &Session{
		profile: profile,
		cart:    cart.New(),
		orders:  orderlog.New(),
	}
}

// Profile returns the identity snapshot captured at login.
func (s *Session) Profile() model.Profile {
	return s.profile
}

// Cart returns the session's cart.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Orders returns the session's order log.
func (s *Session) Orders() *orderlog.Log {
	return s.orders
}

// IsStaff reports whether the profile belongs to a staff member. Staff
// accounts are distinguished by the reserved user ID.
func (s *Session) IsStaff() bool {
	return s.profile.ID == StaffUserID
}

// StaffUserID is the reserved account ID the remote system uses for the
// staff login.
const StaffUserID = "1"
