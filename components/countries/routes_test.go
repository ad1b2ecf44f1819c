package countries

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBaseAndRoute(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"", "/api/countries"},
		{"/", "/api/countries"},
		{"/forms", "/forms/api/countries"},
		{"forms/", "/forms/api/countries"},
	}
	for _, tc := range cases {
		if got := MountPath(tc.base); got != tc.want {
			t.Fatalf("MountPath(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}
}

func TestRegisterRoutes_ServesThroughMux(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/forms", WithCountries(handlerFixture))
	if err != nil {
		t.Fatalf("register routes: %v", err)
	}
	if pattern != "/forms/api/countries" {
		t.Fatalf("unexpected pattern %q", pattern)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/api/countries?q=india", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := RegisterRoutes(nil, "/forms"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
