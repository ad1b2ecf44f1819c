package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_PassesInfoThrough(t *testing.T) {
	original := New(http.StatusUnauthorized, "invalid credentials")

	got := Normalize(fmt.Errorf("login: %w", original))
	if got != original {
		t.Fatalf("expected wrapped info to pass through, got %+v", got)
	}
	if !got.Unauthorized() {
		t.Fatalf("expected unauthorized predicate to hold")
	}
}

func TestNormalize_WrapsPlainErrors(t *testing.T) {
	got := Normalize(errors.New("connection refused"))
	if got.Status != 0 {
		t.Fatalf("transport errors must not carry a status, got %d", got.Status)
	}
	if got.Message != "connection refused" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestNormalize_NilError(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestNew_EmptyMessageDegrades(t *testing.T) {
	got := New(http.StatusBadGateway, "   ")
	if got.Message != GenericMessage {
		t.Fatalf("expected generic message, got %q", got.Message)
	}
}

func TestDecodePayload_MessageShape(t *testing.T) {
	info := DecodePayload(http.StatusUnauthorized, []byte(`{"message":"invalid credentials"}`))
	if info.Message != "invalid credentials" || info.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.HasFields() {
		t.Fatalf("message shape must not produce field errors")
	}
}

func TestDecodePayload_DetailString(t *testing.T) {
	info := DecodePayload(http.StatusConflict, []byte(`{"detail":"email already registered"}`))
	if info.Message != "email already registered" {
		t.Fatalf("unexpected message: %q", info.Message)
	}
}

func TestDecodePayload_DetailEntriesMapToFields(t *testing.T) {
	body := []byte(`{"detail":[
		{"loc":["body","confirm_password"],"msg":"passwords do not match"},
		{"loc":["body","items",0,"email"],"msg":"invalid email"},
		{"loc":["body"],"msg":"payload rejected"}
	]}`)

	info := DecodePayload(http.StatusUnprocessableEntity, body)

	want := map[string]string{
		"confirmPassword": "passwords do not match",
		"email":           "invalid email",
	}
	if diff := cmp.Diff(want, info.Fields); diff != "" {
		t.Fatalf("field mapping mismatch (-want +got):\n%s", diff)
	}
	if info.Message != "payload rejected" {
		t.Fatalf("expected first form-level message, got %q", info.Message)
	}
}

func TestDecodePayload_DegradesOnGarbage(t *testing.T) {
	for _, body := range [][]byte{nil, []byte("not json"), []byte(`{"unrelated":true}`)} {
		info := DecodePayload(http.StatusInternalServerError, body)
		if info.Message != GenericMessage {
			t.Fatalf("body %q: expected generic message, got %q", body, info.Message)
		}
	}
}
