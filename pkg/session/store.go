// Package session tracks the client's belief about whether a user is
// authenticated: the current token, the cached profile, and the transient
// loading/error flags every screen shares. All mutation goes through the
// Store's narrow operation set; observers are notified synchronously so the
// in-memory state, durable storage, and subscribers never drift apart.
package session

import (
	"sync"

	"github.com/goliatone/go-authflow/pkg/apierror"
)

// Profile is the cached account profile. It is opaque to the store: the
// store never inspects fields, it only holds and clears the value.
type Profile struct {
	ID           string `json:"id,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	CountryCode  string `json:"country,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
}

// Snapshot is an immutable view of the session handed to observers.
//
// Invariant: Token != "" is the single source of truth for "authenticated".
// User may lag Token (a token can be restored from storage before a profile
// is fetched) but is never present without one.
type Snapshot struct {
	User    *Profile
	Token   string
	Loading bool
	Err     *apierror.Info
}

// Authenticated reports whether a token is present.
func (s Snapshot) Authenticated() bool { return s.Token != "" }

// Observer receives a snapshot after every mutation. Notification happens
// synchronously inside the mutating call, before it returns. Observers must
// not call back into the Store.
type Observer func(Snapshot)

// Store owns the session state. Construct with New; the zero value is not
// usable. A mutex guards state because, unlike the single-threaded event
// loop this contract originated in, Go callers may mutate from any
// goroutine.
type Store struct {
	mu        sync.Mutex
	state     Snapshot
	storage   TokenStorage
	observers map[int]Observer
	nextID    int
	initOnce  sync.Once
}

// New builds a Store persisting tokens through storage. A nil storage is
// replaced with an in-memory one so every operation stays total.
func New(storage TokenStorage) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Store{
		storage:   storage,
		observers: make(map[int]Observer),
	}
}

// Initialize reads any previously persisted token into memory. It runs its
// side effects exactly once no matter how many times it is called; the
// profile stays nil until an authenticated request confirms it.
func (s *Store) Initialize() {
	s.initOnce.Do(func() {
		token, err := s.storage.Load()
		if err != nil || token == "" {
			return
		}
		s.mu.Lock()
		s.state.Token = token
		s.notifyLocked()
		s.mu.Unlock()
	})
}

// Subscribe registers an observer and returns a function that removes it.
// The observer immediately receives the current snapshot.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	snap := s.state
	s.mu.Unlock()

	fn(snap)
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current token, "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the cached profile, nil when absent.
func (s *Store) User() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// SetToken persists and stores a token. An empty token erases the durable
// entry, clears the in-memory token, and drops the cached user so the
// token/user invariant holds. Durable storage is written before the
// in-memory state changes, so the two never diverge past this call.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		_ = s.storage.Clear()
		s.state.Token = ""
		s.state.User = nil
		s.notifyLocked()
		return
	}

	_ = s.storage.Save(token)
	s.state.Token = token
	s.notifyLocked()
}

// SetUser replaces the cached profile. Setting a profile while no token is
// present is a no-op: a user must never exist without a token.
func (s *Store) SetUser(user *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil && s.state.Token == "" {
		return
	}
	s.state.User = user
	s.notifyLocked()
}

// SetLoading flips the shared loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
	s.notifyLocked()
}

// SetErr records the last failure, nil to clear it.
func (s *Store) SetErr(info *apierror.Info) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = info
	s.notifyLocked()
}

// ClearAuth atomically clears user, token, loading flag, and error, and
// erases the durable entry. Used on sign-out and on a 401 response.
func (s *Store) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.storage.Clear()
	s.state = Snapshot{}
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	snap := s.state
	for _, fn := range s.observers {
		fn(snap)
	}
}
