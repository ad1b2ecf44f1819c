package authforms

import (
	"context"

	"github.com/goliatone/go-authflow/pkg/account"
	"github.com/goliatone/go-authflow/pkg/apierror"
	"github.com/goliatone/go-authflow/pkg/notify"
	"github.com/goliatone/go-authflow/pkg/session"
	"github.com/goliatone/go-authflow/pkg/submit"
	"github.com/goliatone/go-authflow/pkg/validation"
)

// LoginDraft holds the in-progress login values.
type LoginDraft struct {
	Email    string
	Password string
	Remember bool
}

func (d LoginDraft) fields() map[string]string {
	return map[string]string{
		FieldEmail:    d.Email,
		FieldPassword: d.Password,
	}
}

var loginRules = validation.Ruleset{
	FieldEmail: {
		validation.Required("email is required"),
		validation.Email("enter a valid email address"),
	},
	FieldPassword: {
		validation.Required("password is required"),
	},
}

// ValidateLogin runs the login ruleset against a draft.
func ValidateLogin(draft LoginDraft) validation.Errors {
	return loginRules.Apply(draft.fields())
}

// LoginForm drives the sign-in screen.
type LoginForm struct {
	store      *session.Store
	service    Service
	notifier   notify.Notifier
	navigator  Navigator
	controller *submit.Controller[LoginDraft, *account.AuthResponse]

	draft  LoginDraft
	errors validation.Errors
}

// NewLoginForm wires the form to its collaborators. Notifier and navigator
// may be nil for headless use.
func NewLoginForm(store *session.Store, service Service, notifier notify.Notifier, navigator Navigator) *LoginForm {
	if notifier == nil {
		notifier = notify.Discard
	}
	f := &LoginForm{
		store:     store,
		service:   service,
		notifier:  notifier,
		navigator: navigator,
		errors:    make(validation.Errors),
	}
	f.controller = submit.New(
		func(ctx context.Context, draft LoginDraft) (*account.AuthResponse, error) {
			return service.Login(ctx, account.Credentials{
				Email:    draft.Email,
				Password: draft.Password,
			})
		},
		submit.Hooks[*account.AuthResponse]{
			OnStart:   f.onStart,
			OnSuccess: f.onSuccess,
			OnError:   f.onError,
			OnSettled: f.onSettled,
		},
	)
	return f
}

// Mount applies the mount-time guard: when a token is already present the
// form redirects straight to the authenticated landing area and reports
// true, so the caller skips rendering the login screen.
func (f *LoginForm) Mount() bool {
	if f.store.Token() == "" {
		return false
	}
	if f.navigator != nil {
		f.navigator.Navigate(RouteHome)
	}
	return true
}

// Draft returns the current draft.
func (f *LoginForm) Draft() LoginDraft { return f.draft }

// SetEmail updates the draft and clears the field's stale error.
func (f *LoginForm) SetEmail(value string) {
	f.draft.Email = value
	f.errors.Clear(FieldEmail)
}

// SetPassword updates the draft and clears the field's stale error.
func (f *LoginForm) SetPassword(value string) {
	f.draft.Password = value
	f.errors.Clear(FieldPassword)
}

// SetRemember records the remember-me choice. Storage tier selection happens
// at store construction; the form only carries the flag.
func (f *LoginForm) SetRemember(remember bool) { f.draft.Remember = remember }

// Errors returns the current field errors.
func (f *LoginForm) Errors() validation.Errors { return f.errors }

// Status exposes the submission state for rendering.
func (f *LoginForm) Status() submit.Status { return f.controller.Status() }

// Submit validates the draft and, when clean, runs the login submission.
// A draft with violations never reaches the network; the errors are left on
// the form for rendering and returned to the caller.
func (f *LoginForm) Submit(ctx context.Context) error {
	if errs := ValidateLogin(f.draft); !errs.Valid() {
		f.errors = errs
		return ErrDraftInvalid
	}
	f.errors = make(validation.Errors)
	return f.controller.Submit(ctx, f.draft)
}

func (f *LoginForm) onStart() {
	f.store.SetErr(nil)
	f.store.SetLoading(true)
}

func (f *LoginForm) onSuccess(res *account.AuthResponse) {
	if res != nil && res.Token != "" {
		f.store.SetToken(res.Token)
		if res.User != nil {
			f.store.SetUser(res.User)
		}
	}
	f.notifier.Notify("signed in successfully", notify.SeveritySuccess)
	if f.navigator != nil {
		f.navigator.Navigate(RouteHome)
	}
}

func (f *LoginForm) onError(info *apierror.Info) {
	// A 401 means whatever token we held is stale; drop it so the client
	// does not keep presenting a dead credential.
	if info.Unauthorized() {
		f.store.ClearAuth()
	}
	f.store.SetErr(info)
	if info.HasFields() {
		f.errors.Merge(info.Fields)
	}
	f.notifier.Notify(info.Message, notify.SeverityError)
}

func (f *LoginForm) onSettled() {
	f.store.SetLoading(false)
}
