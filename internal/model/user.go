package model

// Profile is the signed-in user's identity as captured at login. Checkout
// snapshots these fields into the order; they are not re-read afterwards.
type Profile struct {
	ID    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone_number"`
}

// LoginRequest is the credentials payload for the login endpoint.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse is the remote reply to a login request.
type LoginResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
	Error   string  `json:"error,omitempty"`
}

// SignupRequest is the registration payload for the signup endpoint.
type SignupRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
}
