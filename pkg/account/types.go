package account

import "github.com/goliatone/go-authflow/pkg/session"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload is the signup request body. Field names follow the wire
// contract of the account service, including the snake_case confirmation
// field it insists on.
type RegisterPayload struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Country         string `json:"country"`
	MobileNumber    string `json:"mobileNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DateOfBirth     string `json:"dateOfBirth"`
	Height          string `json:"height,omitempty"`
	Weight          string `json:"weight,omitempty"`
	Gender          string `json:"gender"`
}

// AuthResponse is the success body of both endpoints. Token may be absent on
// register when the service defers issuing one until first login.
type AuthResponse struct {
	User  *session.Profile `json:"user,omitempty"`
	Token string           `json:"token,omitempty"`
}
