// Package authforms composes the validation engine, submission controller,
// session store, and collaborators into the two account screens: login and
// signup. Each form owns its draft and error state; session state is the
// only thing shared across forms, and it is only touched through the store.
package authforms

import (
	"context"
	"errors"

	"github.com/goliatone/go-authflow/pkg/account"
)

// ErrDraftInvalid is returned by Submit when local validation blocked the
// submission. The per-field messages are available on the form; nothing
// reached the network.
var ErrDraftInvalid = errors.New("authforms: draft has validation errors")

// Routes the forms ask the Navigator to move between. The routing table
// itself lives with the caller.
const (
	RouteLogin  = "/login"
	RouteSignup = "/signup"
	RouteHome   = "/"
)

// Navigator is the navigation collaborator.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Service is the slice of the account client the forms depend on.
// *account.Client satisfies it.
type Service interface {
	Login(ctx context.Context, creds account.Credentials) (*account.AuthResponse, error)
	Register(ctx context.Context, payload account.RegisterPayload) (*account.AuthResponse, error)
}

// Canonical draft field names. Server-side violations are mapped onto these
// same names so both error origins fill identical slots.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldCountry         = "country"
	FieldMobileNumber    = "mobileNumber"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldDateOfBirth     = "dateOfBirth"
	FieldGender          = "gender"
	FieldHeight          = "height"
	FieldWeight          = "weight"
)

// PasswordMinLength is the enforced minimum. The user-facing message quotes
// the same number.
const PasswordMinLength = 6
