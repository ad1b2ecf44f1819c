// Package submit wraps an asynchronous submit function in an explicit state
// machine so every form shares the same lifecycle:
//
//	idle --Submit--> pending --success--> succeeded --settled--> idle
//	                 pending --failure--> failed    --settled--> idle
//
// Only one submission may be pending per controller; hooks fire in the fixed
// order OnStart, then OnSuccess or OnError, then OnSettled, with OnSettled
// guaranteed to run exactly once per accepted submission on every exit path.
package submit

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-authflow/pkg/apierror"
)

// Status enumerates the controller states.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

// String returns the lower-case state name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission is still pending. The wrapped function is not invoked and no
// hook fires, so a double-click cannot produce a duplicate network call.
var ErrSubmissionInFlight = errors.New("submit: submission already in flight")

// Func is the asynchronous operation the controller drives.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Hooks are the caller-supplied lifecycle callbacks. Any of them may be nil.
type Hooks[Out any] struct {
	// OnStart runs after the transition to pending, before the wrapped
	// function is invoked. Typically flips a shared loading flag.
	OnStart func()

	// OnSuccess receives the resolved value.
	OnSuccess func(Out)

	// OnError receives the failure, already normalized into an apierror.Info.
	OnError func(*apierror.Info)

	// OnSettled runs exactly once per submission regardless of outcome.
	// Typically releases the loading flag.
	OnSettled func()
}

// Controller owns one logical submission at a time. The zero value is not
// usable; construct with New.
type Controller[In, Out any] struct {
	fn    Func[In, Out]
	hooks Hooks[Out]

	mu      sync.Mutex
	status  Status
	lastErr *apierror.Info
}

// New builds a controller around fn with the given hooks.
func New[In, Out any](fn Func[In, Out], hooks Hooks[Out]) *Controller[In, Out] {
	return &Controller[In, Out]{fn: fn, hooks: hooks}
}

// Status returns the current state.
func (c *Controller[In, Out]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// LastError returns the failure recorded by the most recent submission, nil
// after a success or before any submission.
func (c *Controller[In, Out]) LastError() *apierror.Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Submit runs one submission to completion, blocking until the wrapped
// function returns. While a submission is pending, further calls return
// ErrSubmissionInFlight without side effects. The returned error is the
// normalized failure (also delivered to OnError), nil on success.
func (c *Controller[In, Out]) Submit(ctx context.Context, in In) error {
	c.mu.Lock()
	if c.status == StatusPending {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if c.fn == nil {
		c.mu.Unlock()
		return errors.New("submit: controller has no submit func")
	}
	c.status = StatusPending
	c.lastErr = nil
	c.mu.Unlock()

	defer func() {
		if c.hooks.OnSettled != nil {
			c.hooks.OnSettled()
		}
		c.mu.Lock()
		c.status = StatusIdle
		c.mu.Unlock()
	}()

	if c.hooks.OnStart != nil {
		c.hooks.OnStart()
	}

	out, err := c.fn(ctx, in)
	if err != nil {
		info := apierror.Normalize(err)
		c.mu.Lock()
		c.status = StatusFailed
		c.lastErr = info
		c.mu.Unlock()
		if c.hooks.OnError != nil {
			c.hooks.OnError(info)
		}
		return info
	}

	c.mu.Lock()
	c.status = StatusSucceeded
	c.mu.Unlock()
	if c.hooks.OnSuccess != nil {
		c.hooks.OnSuccess(out)
	}
	return nil
}
