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

// SignupDraft holds the in-progress registration values. Height and weight
// are optional extras; everything else is required by the contract.
type SignupDraft struct {
	FirstName       string
	LastName        string
	Email           string
	Country         string
	MobileNumber    string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	Gender          string
	Height          string
	Weight          string
}

func (d SignupDraft) fields() map[string]string {
	return map[string]string{
		FieldFirstName:       d.FirstName,
		FieldLastName:        d.LastName,
		FieldEmail:           d.Email,
		FieldCountry:         d.Country,
		FieldMobileNumber:    d.MobileNumber,
		FieldPassword:        d.Password,
		FieldConfirmPassword: d.ConfirmPassword,
		FieldDateOfBirth:     d.DateOfBirth,
		FieldGender:          d.Gender,
	}
}

func (d SignupDraft) payload() account.RegisterPayload {
	return account.RegisterPayload{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Country:         d.Country,
		MobileNumber:    d.MobileNumber,
		Password:        d.Password,
		ConfirmPassword: d.ConfirmPassword,
		DateOfBirth:     d.DateOfBirth,
		Height:          d.Height,
		Weight:          d.Weight,
		Gender:          d.Gender,
	}
}

// ValidateSignup runs the signup ruleset against a draft. Every violated
// rule is reported; nothing short-circuits.
func ValidateSignup(draft SignupDraft) validation.Errors {
	rules := validation.Ruleset{
		FieldFirstName:   {validation.Required("first name is required")},
		FieldLastName:    {validation.Required("last name is required")},
		FieldCountry:     {validation.Required("country code is required")},
		FieldDateOfBirth: {validation.Required("date of birth is required")},
		FieldGender:      {validation.Required("gender is required")},
		FieldEmail: {
			validation.Required("email is required"),
			validation.Email("enter a valid email address"),
		},
		FieldMobileNumber: {
			validation.Required("mobile number is required"),
			validation.DigitsExactly(10, "mobile number must be 10 digits"),
		},
		FieldPassword: {
			validation.Required("password is required"),
			validation.MinLength(PasswordMinLength,
				validation.MinLengthMessage("password", PasswordMinLength)),
		},
		FieldConfirmPassword: {
			validation.Required("confirm your password"),
			validation.EqualTo(func() string { return draft.Password }, "passwords do not match"),
		},
	}
	return rules.Apply(draft.fields())
}

// SignupForm drives the registration screen.
type SignupForm struct {
	store      *session.Store
	service    Service
	notifier   notify.Notifier
	controller *submit.Controller[SignupDraft, *account.AuthResponse]

	draft  SignupDraft
	errors validation.Errors
}

// NewSignupForm wires the form to its collaborators. Redirect policy after a
// successful registration belongs to the caller, so no navigator is taken.
func NewSignupForm(store *session.Store, service Service, notifier notify.Notifier) *SignupForm {
	if notifier == nil {
		notifier = notify.Discard
	}
	f := &SignupForm{
		store:    store,
		service:  service,
		notifier: notifier,
		errors:   make(validation.Errors),
	}
	f.controller = submit.New(
		func(ctx context.Context, draft SignupDraft) (*account.AuthResponse, error) {
			return service.Register(ctx, draft.payload())
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

// Draft returns the current draft.
func (f *SignupForm) Draft() SignupDraft { return f.draft }

// SetField updates one draft field by canonical name and clears its stale
// error. Unknown names are ignored.
func (f *SignupForm) SetField(name, value string) {
	switch name {
	case FieldFirstName:
		f.draft.FirstName = value
	case FieldLastName:
		f.draft.LastName = value
	case FieldEmail:
		f.draft.Email = value
	case FieldCountry:
		f.draft.Country = value
	case FieldMobileNumber:
		f.draft.MobileNumber = value
	case FieldPassword:
		f.draft.Password = value
	case FieldConfirmPassword:
		f.draft.ConfirmPassword = value
	case FieldDateOfBirth:
		f.draft.DateOfBirth = value
	case FieldGender:
		f.draft.Gender = value
	case FieldHeight:
		f.draft.Height = value
	case FieldWeight:
		f.draft.Weight = value
	default:
		return
	}
	f.errors.Clear(name)
}

// Errors returns the current field errors, local and server-reported alike.
func (f *SignupForm) Errors() validation.Errors { return f.errors }

// Status exposes the submission state for rendering.
func (f *SignupForm) Status() submit.Status { return f.controller.Status() }

// Submit validates the draft and, when clean, runs the registration
// submission. Violations block the network call entirely.
func (f *SignupForm) Submit(ctx context.Context) error {
	if errs := ValidateSignup(f.draft); !errs.Valid() {
		f.errors = errs
		return ErrDraftInvalid
	}
	f.errors = make(validation.Errors)
	return f.controller.Submit(ctx, f.draft)
}

func (f *SignupForm) onStart() {
	f.store.SetErr(nil)
	f.store.SetLoading(true)
}

func (f *SignupForm) onSuccess(res *account.AuthResponse) {
	if res != nil && res.Token != "" {
		f.store.SetToken(res.Token)
		if res.User != nil {
			f.store.SetUser(res.User)
		}
	}
	f.notifier.Notify("account created successfully", notify.SeveritySuccess)
}

func (f *SignupForm) onError(info *apierror.Info) {
	f.store.SetErr(info)
	// Server-detected field violations land in the same slots the local
	// engine fills, so the screen renders one unified error experience.
	if info.HasFields() {
		f.errors.Merge(info.Fields)
	}
	f.notifier.Notify(info.Message, notify.SeverityError)
}

func (f *SignupForm) onSettled() {
	f.store.SetLoading(false)
}
