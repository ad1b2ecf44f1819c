package countries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var handlerFixture = []Country{
	{Name: "Argentina", ISO: "AR", DialCode: "+54"},
	{Name: "Germany", ISO: "DE", DialCode: "+49"},
	{Name: "India", ISO: "IN", DialCode: "+91"},
}

func decodeOptions(t *testing.T, rec *httptest.ResponseRecorder) []Option {
	t.Helper()
	var payload optionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload.Data
}

func TestHandler_FiltersByQuery(t *testing.T) {
	handler := Handler(WithCountries(handlerFixture))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/countries?q=ger", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := []Option{{Value: "+49", Label: "Germany (+49)"}}
	if diff := cmp.Diff(want, decodeOptions(t, rec)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_EmptyQueryReturnsEmptyData(t *testing.T) {
	handler := Handler(WithCountries(handlerFixture))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeOptions(t, rec); len(got) != 0 {
		t.Fatalf("expected empty data, got %#v", got)
	}
}

func TestHandler_LimitClampsResults(t *testing.T) {
	handler := Handler(
		WithCountries(handlerFixture),
		WithEmptySearchMode(EmptySearchTop),
		WithMaxLimit(2),
	)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/countries?limit=100", nil)

	handler.ServeHTTP(rec, req)

	if got := decodeOptions(t, rec); len(got) != 2 {
		t.Fatalf("expected max-limit clamp to 2, got %d", len(got))
	}
}

func TestHandler_RejectsNonReadMethods(t *testing.T) {
	handler := Handler(WithCountries(handlerFixture))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/countries", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("expected Allow header, got %q", got)
	}
}

func TestHandler_HeadOmitsBody(t *testing.T) {
	handler := Handler(WithCountries(handlerFixture))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/api/countries?q=ger", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestHandler_GuardShortCircuits(t *testing.T) {
	handler := Handler(
		WithCountries(handlerFixture),
		WithGuard(func(*http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/countries?q=ger", nil)

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected guard status, got %d", rec.Code)
	}
}
