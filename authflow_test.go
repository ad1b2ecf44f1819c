package authflow_test

import (
	"net/http"
	"testing"

	authflow "github.com/goliatone/go-authflow"
	"github.com/goliatone/go-authflow/pkg/session"
	"github.com/goliatone/go-authflow/pkg/testsupport"
)

func TestNew_LoginRoundTrip(t *testing.T) {
	server := testsupport.NewAuthServer(t, map[string]testsupport.Route{
		"/auth/login": {
			Status: http.StatusOK,
			Body:   testsupport.TokenResponse("tok123", "a@b.com"),
		},
	})

	var visited []string
	kit, err := authflow.New(server.URL(),
		authflow.WithNavigator(authflow.NavigatorFunc(func(route string) {
			visited = append(visited, route)
		})),
	)
	if err != nil {
		t.Fatalf("new toolkit: %v", err)
	}

	kit.Login.SetEmail("a@b.com")
	kit.Login.SetPassword("secret")
	if err := kit.Login.Submit(testsupport.Context()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := kit.Store.Token(); got != "tok123" {
		t.Fatalf("expected stored token, got %q", got)
	}
	if len(visited) != 1 || visited[0] != "/" {
		t.Fatalf("expected navigation home, got %#v", visited)
	}

	requests := server.Requests("/auth/login")
	if len(requests) != 1 {
		t.Fatalf("expected one login request, got %d", len(requests))
	}
	if got := requests[0]["email"]; got != "a@b.com" {
		t.Fatalf("unexpected wire email %v", got)
	}
}

func TestNew_RestoresPersistedToken(t *testing.T) {
	storage := session.NewMemoryStorage()
	if err := storage.Save("persisted"); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	kit, err := authflow.New("http://localhost:9", authflow.WithTokenStorage(storage))
	if err != nil {
		t.Fatalf("new toolkit: %v", err)
	}
	if got := kit.Store.Token(); got != "persisted" {
		t.Fatalf("expected restored token, got %q", got)
	}
	if !kit.Login.Mount() {
		t.Fatalf("expected mount guard with a restored token")
	}
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	if _, err := authflow.New("   "); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
