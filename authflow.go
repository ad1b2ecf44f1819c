// Package authflow bundles the account client, session store, and auth form
// controllers behind one constructor so callers can stand up the full sign-in
// surface with a handful of options.
package authflow

import (
	"net/http"

	"github.com/goliatone/go-authflow/pkg/account"
	"github.com/goliatone/go-authflow/pkg/authforms"
	"github.com/goliatone/go-authflow/pkg/notify"
	"github.com/goliatone/go-authflow/pkg/session"
)

// Snapshot is the immutable session view handed to observers.
type Snapshot = session.Snapshot

// Profile carries the authenticated user's details.
type Profile = session.Profile

// Credentials is the login request payload.
type Credentials = account.Credentials

// RegisterPayload is the registration request payload.
type RegisterPayload = account.RegisterPayload

// Navigator receives route changes from the forms.
type Navigator = authforms.Navigator

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc = authforms.NavigatorFunc

// Toolkit holds the wired pieces of the auth surface. Fields are exported so
// callers can reach past the bundle when they need a single collaborator.
type Toolkit struct {
	Store  *session.Store
	Client *account.Client
	Login  *authforms.LoginForm
	Signup *authforms.SignupForm
}

type config struct {
	storage    session.TokenStorage
	httpClient *http.Client
	notifier   notify.Notifier
	navigator  authforms.Navigator
}

// Option customizes the toolkit constructor.
type Option func(*config)

// WithTokenStorage selects the token persistence tier. In-memory storage is
// the default; pass a file storage to survive restarts.
func WithTokenStorage(storage session.TokenStorage) Option {
	return func(c *config) { c.storage = storage }
}

// WithHTTPClient overrides the transport used by the account client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.httpClient = client }
}

// WithNotifier routes form outcome notices somewhere visible.
func WithNotifier(notifier notify.Notifier) Option {
	return func(c *config) { c.notifier = notifier }
}

// WithNavigator receives the login form's route changes.
func WithNavigator(navigator authforms.Navigator) Option {
	return func(c *config) { c.navigator = navigator }
}

// New wires the account client, session store, and both forms against the
// service at baseURL. The store is initialized from storage before return, so
// a persisted token is already visible on the first snapshot.
func New(baseURL string, options ...Option) (*Toolkit, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	store := session.New(cfg.storage)
	store.Initialize()

	clientOpts := []account.Option{account.WithTokenSource(store.Token)}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, account.WithHTTPClient(cfg.httpClient))
	}
	client, err := account.NewClient(baseURL, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &Toolkit{
		Store:  store,
		Client: client,
		Login:  authforms.NewLoginForm(store, client, cfg.notifier, cfg.navigator),
		Signup: authforms.NewSignupForm(store, client, cfg.notifier),
	}, nil
}
