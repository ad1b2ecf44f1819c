package account

import "github.com/goliatone/go-authflow/pkg/apierror"

// apierrorFromResponse turns a non-success response into the shared failure
// shape. The service reports either {"message": ...} or {"detail": ...}
// where detail is a string or a list of {loc, msg} entries.
func apierrorFromResponse(status int, body []byte) *apierror.Info {
	return apierror.DecodePayload(status, body)
}
