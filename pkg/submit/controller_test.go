package submit

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authflow/pkg/apierror"
)

func TestSubmit_SuccessHookOrder(t *testing.T) {
	var calls []string
	ctrl := New(
		func(_ context.Context, in string) (string, error) {
			calls = append(calls, "fn:"+in)
			return "tok123", nil
		},
		Hooks[string]{
			OnStart:   func() { calls = append(calls, "start") },
			OnSuccess: func(out string) { calls = append(calls, "success:"+out) },
			OnError:   func(*apierror.Info) { calls = append(calls, "error") },
			OnSettled: func() { calls = append(calls, "settled") },
		},
	)

	if err := ctrl.Submit(context.Background(), "payload"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := []string{"start", "fn:payload", "success:tok123", "settled"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("hook order mismatch (-want +got):\n%s", diff)
	}
	if got := ctrl.Status(); got != StatusIdle {
		t.Fatalf("expected idle after settle, got %s", got)
	}
	if ctrl.LastError() != nil {
		t.Fatalf("expected no residual error")
	}
}

func TestSubmit_FailureHookOrderAndNormalization(t *testing.T) {
	var calls []string
	var received *apierror.Info
	ctrl := New(
		func(context.Context, string) (string, error) {
			return "", apierror.New(http.StatusUnauthorized, "invalid credentials")
		},
		Hooks[string]{
			OnStart:   func() { calls = append(calls, "start") },
			OnSuccess: func(string) { calls = append(calls, "success") },
			OnError: func(info *apierror.Info) {
				calls = append(calls, "error")
				received = info
			},
			OnSettled: func() { calls = append(calls, "settled") },
		},
	)

	err := ctrl.Submit(context.Background(), "payload")
	if err == nil {
		t.Fatalf("expected failure")
	}

	want := []string{"start", "error", "settled"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("hook order mismatch (-want +got):\n%s", diff)
	}
	if !received.Unauthorized() || received.Message != "invalid credentials" {
		t.Fatalf("unexpected normalized failure: %+v", received)
	}
	if got := ctrl.Status(); got != StatusIdle {
		t.Fatalf("expected idle after settle, got %s", got)
	}
	if ctrl.LastError() == nil {
		t.Fatalf("expected failure to be recorded")
	}
}

func TestSubmit_TransportErrorsAreNormalized(t *testing.T) {
	ctrl := New(
		func(context.Context, struct{}) (struct{}, error) {
			return struct{}{}, errors.New("dial tcp: connection refused")
		},
		Hooks[struct{}]{},
	)

	err := ctrl.Submit(context.Background(), struct{}{})
	info := apierror.Normalize(err)
	if info.Status != 0 {
		t.Fatalf("transport failures carry no status, got %d", info.Status)
	}
}

func TestSubmit_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var remoteCalls int

	ctrl := New(
		func(context.Context, struct{}) (struct{}, error) {
			remoteCalls++
			close(started)
			<-release
			return struct{}{}, nil
		},
		Hooks[struct{}]{},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Submit(context.Background(), struct{}{})
	}()

	<-started
	if err := ctrl.Submit(context.Background(), struct{}{}); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(release)
	wg.Wait()

	if remoteCalls != 1 {
		t.Fatalf("second submit must not reach the remote call, got %d calls", remoteCalls)
	}
}

func TestSubmit_SettledCountMatchesSubmitCount(t *testing.T) {
	var settled int
	fail := false
	ctrl := New(
		func(context.Context, struct{}) (struct{}, error) {
			if fail {
				return struct{}{}, errors.New("boom")
			}
			return struct{}{}, nil
		},
		Hooks[struct{}]{OnSettled: func() { settled++ }},
	)

	const submissions = 6
	for i := 0; i < submissions; i++ {
		fail = i%2 == 0
		_ = ctrl.Submit(context.Background(), struct{}{})
	}

	if settled != submissions {
		t.Fatalf("OnSettled fired %d times for %d submissions", settled, submissions)
	}
}

func TestSubmit_ControllerIsReusableAfterFailure(t *testing.T) {
	attempts := 0
	ctrl := New(
		func(context.Context, struct{}) (string, error) {
			attempts++
			if attempts == 1 {
				return "", errors.New("first try fails")
			}
			return "tok123", nil
		},
		Hooks[string]{},
	)

	if err := ctrl.Submit(context.Background(), struct{}{}); err == nil {
		t.Fatalf("expected first submission to fail")
	}
	if err := ctrl.Submit(context.Background(), struct{}{}); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[Status]string{
		StatusIdle:      "idle",
		StatusPending:   "pending",
		StatusSucceeded: "succeeded",
		StatusFailed:    "failed",
		Status(99):      "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
