// Package testsupport holds shared fixtures for exercising the auth surface
// against a scripted account service.
package testsupport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Route is one scripted endpoint response.
type Route struct {
	Status int
	Body   any
}

// AuthServer is a scripted stand-in for the account service. It records the
// decoded request bodies so tests can assert on the wire payloads.
type AuthServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests map[string][]map[string]any
}

// NewAuthServer starts a server answering the register and login endpoints
// with the provided routes. Unrouted paths return 404. The server is torn
// down with the test.
func NewAuthServer(t *testing.T, routes map[string]Route) *AuthServer {
	t.Helper()

	as := &AuthServer{requests: map[string][]map[string]any{}}
	as.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}

		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		as.mu.Lock()
		as.requests[r.URL.Path] = append(as.requests[r.URL.Path], body)
		as.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.Status)
		if route.Body != nil {
			_ = json.NewEncoder(w).Encode(route.Body)
		}
	}))
	t.Cleanup(as.Server.Close)
	return as
}

// URL returns the base URL of the scripted service.
func (as *AuthServer) URL() string { return as.Server.URL }

// Requests returns the decoded bodies received on path, in arrival order.
func (as *AuthServer) Requests(path string) []map[string]any {
	as.mu.Lock()
	defer as.mu.Unlock()
	return append([]map[string]any(nil), as.requests[path]...)
}

// TokenResponse builds the success payload the account service returns.
func TokenResponse(token, email string) map[string]any {
	return map[string]any{
		"token": token,
		"user":  map[string]any{"email": email},
	}
}

// MessageResponse builds the flat failure payload.
func MessageResponse(message string) map[string]any {
	return map[string]any{"message": message}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
