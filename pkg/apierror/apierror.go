package apierror

import (
	"errors"
	"net/http"
	"strings"
)

// Info is the single failure shape the rest of the module consumes. Every
// failure origin (local validation, transport, remote rejection) is folded
// into this struct so presentation code has one path.
type Info struct {
	// Status carries the HTTP status of a remote rejection, or zero when the
	// failure never reached the service (transport error, local error).
	Status int `json:"status,omitempty"`

	// Message is always present and safe to show to a user.
	Message string `json:"message"`

	// Fields maps client field names to messages for field-level rejections.
	Fields map[string]string `json:"fields,omitempty"`
}

// GenericMessage is used when a failure carries no usable message of its own.
const GenericMessage = "something went wrong, please try again"

// Error satisfies the error interface so an Info can travel through code that
// only understands errors.
func (i *Info) Error() string {
	if i == nil || i.Message == "" {
		return GenericMessage
	}
	return i.Message
}

// Unauthorized reports whether the failure was an invalid or expired
// credential rejection.
func (i *Info) Unauthorized() bool {
	return i != nil && i.Status == http.StatusUnauthorized
}

// HasFields reports whether the failure carries field-level messages.
func (i *Info) HasFields() bool {
	return i != nil && len(i.Fields) > 0
}

// New builds an Info with a trimmed message, degrading to the generic one.
func New(status int, message string) *Info {
	message = strings.TrimSpace(message)
	if message == "" {
		message = GenericMessage
	}
	return &Info{Status: status, Message: message}
}

// Normalize folds any error into an Info. An *Info passes through untouched,
// everything else (transport failures, decode failures, plain errors) becomes
// a status-less Info with the error text as message.
func Normalize(err error) *Info {
	if err == nil {
		return nil
	}
	var info *Info
	if errors.As(err, &info) && info != nil {
		return info
	}
	return New(0, err.Error())
}
