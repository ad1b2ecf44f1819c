// Package tui drives the login and signup screens over a terminal prompt
// driver. The forms own validation and submission; this package only collects
// input and echoes outcomes.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-authflow/pkg/authforms"
	"github.com/goliatone/go-authflow/pkg/dropdown"
)

// Choice is one selectable entry for select prompts, pairing the label shown
// to the user with the value committed to the form.
type Choice struct {
	Label string
	Value string
}

// Flows runs the interactive account screens.
type Flows struct {
	driver    PromptDriver
	countries []Choice
	attempts  int
}

// NewFlows constructs the flow runner. A nil driver falls back to the survey
// implementation.
func NewFlows(opts ...FlowOption) (*Flows, error) {
	f := &Flows{attempts: 3}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		driver, err := newSurveyDriver()
		if err != nil {
			return nil, err
		}
		f.driver = driver
	}
	return f, nil
}

// FlowOption customizes a Flows runner.
type FlowOption func(*Flows)

// WithDriver swaps the prompt driver, typically for tests.
func WithDriver(driver PromptDriver) FlowOption {
	return func(f *Flows) { f.driver = driver }
}

// WithCountries supplies the dial-code choices for the signup country prompt.
func WithCountries(choices []Choice) FlowOption {
	return func(f *Flows) { f.countries = append([]Choice(nil), choices...) }
}

// WithAttempts caps how many times an invalid draft is re-prompted before the
// flow gives up. Values below one are ignored.
func WithAttempts(n int) FlowOption {
	return func(f *Flows) {
		if n >= 1 {
			f.attempts = n
		}
	}
}

// Login runs the sign-in screen: collect credentials, submit, re-prompt while
// local validation rejects the draft. Already-authenticated sessions skip the
// screen entirely.
func (f *Flows) Login(ctx context.Context, form *authforms.LoginForm) error {
	if form.Mount() {
		return f.driver.Info(ctx, "already signed in")
	}

	for attempt := 0; attempt < f.attempts; attempt++ {
		email, err := f.driver.Input(ctx, InputConfig{
			Message: "Email",
			Default: form.Draft().Email,
		})
		if err != nil {
			return err
		}
		form.SetEmail(email)

		password, err := f.driver.Password(ctx, InputConfig{Message: "Password"})
		if err != nil {
			return err
		}
		form.SetPassword(password)

		remember, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: "Stay signed in?",
			Default: form.Draft().Remember,
		})
		if err != nil {
			return err
		}
		form.SetRemember(remember)

		err = form.Submit(ctx)
		if errors.Is(err, authforms.ErrDraftInvalid) {
			if infoErr := f.reportErrors(ctx, form.Errors()); infoErr != nil {
				return infoErr
			}
			continue
		}
		return err
	}
	return authforms.ErrDraftInvalid
}

// Signup runs the registration screen. The country prompt goes through the
// select widget so filtering and label/value mapping behave exactly as the
// HTML rendition does.
func (f *Flows) Signup(ctx context.Context, form *authforms.SignupForm) error {
	for attempt := 0; attempt < f.attempts; attempt++ {
		if err := f.collectSignup(ctx, form); err != nil {
			return err
		}

		err := form.Submit(ctx)
		if errors.Is(err, authforms.ErrDraftInvalid) {
			if infoErr := f.reportErrors(ctx, form.Errors()); infoErr != nil {
				return infoErr
			}
			continue
		}
		return err
	}
	return authforms.ErrDraftInvalid
}

func (f *Flows) collectSignup(ctx context.Context, form *authforms.SignupForm) error {
	text := []struct {
		field   string
		message string
	}{
		{authforms.FieldFirstName, "First name"},
		{authforms.FieldLastName, "Last name"},
		{authforms.FieldEmail, "Email"},
		{authforms.FieldMobileNumber, "Mobile number"},
		{authforms.FieldDateOfBirth, "Date of birth (YYYY-MM-DD)"},
		{authforms.FieldGender, "Gender"},
		{authforms.FieldHeight, "Height (optional)"},
		{authforms.FieldWeight, "Weight (optional)"},
	}
	for _, prompt := range text {
		value, err := f.driver.Input(ctx, InputConfig{Message: prompt.message})
		if err != nil {
			return err
		}
		form.SetField(prompt.field, value)
	}

	if len(f.countries) > 0 {
		if err := f.selectCountry(ctx, form); err != nil {
			return err
		}
	}

	password, err := f.driver.Password(ctx, InputConfig{Message: "Password"})
	if err != nil {
		return err
	}
	form.SetField(authforms.FieldPassword, password)

	confirm, err := f.driver.Password(ctx, InputConfig{Message: "Confirm password"})
	if err != nil {
		return err
	}
	form.SetField(authforms.FieldConfirmPassword, confirm)
	return nil
}

func (f *Flows) selectCountry(ctx context.Context, form *authforms.SignupForm) error {
	widget, err := dropdown.New(f.countries, dropdown.Accessors[Choice]{
		Label: func(c Choice) string { return c.Label },
		Value: func(c Choice) string { return c.Value },
	}, func(value string) {
		form.SetField(authforms.FieldCountry, value)
	})
	if err != nil {
		return err
	}
	if err := widget.Open(); err != nil {
		return err
	}

	visible := widget.Visible()
	labels := make([]string, len(visible))
	for i, c := range visible {
		labels[i] = c.Label
	}
	index, err := f.driver.Select(ctx, SelectConfig{
		Message:  "Country code",
		Options:  labels,
		PageSize: widget.Config().PageSize,
	})
	if err != nil {
		widget.Dismiss()
		return err
	}
	return widget.Select(index)
}

func (f *Flows) reportErrors(ctx context.Context, errs map[string]string) error {
	for _, field := range []string{
		authforms.FieldFirstName,
		authforms.FieldLastName,
		authforms.FieldEmail,
		authforms.FieldCountry,
		authforms.FieldMobileNumber,
		authforms.FieldPassword,
		authforms.FieldConfirmPassword,
		authforms.FieldDateOfBirth,
		authforms.FieldGender,
	} {
		msg, ok := errs[field]
		if !ok {
			continue
		}
		if err := f.driver.Info(ctx, fmt.Sprintf("%s: %s", field, msg)); err != nil {
			return err
		}
	}
	return nil
}
