// Package account is the HTTP client for the remote account service, the
// black-box collaborator behind login and signup. Failures of every kind
// (network, non-2xx status, malformed body) come back as *apierror.Info so
// upstream code has a single error shape to handle.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 1 << 20
)

// Client talks to the account service. Construct with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, e.g. to tune timeouts or
// inject a test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		c.http = hc
	}
}

// WithTokenSource supplies the bearer token attached to authenticated
// requests. The function is consulted per request so a refreshed session is
// picked up automatically.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) {
		c.token = fn
	}
}

// NewClient builds a client for the service at baseURL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("account: base url is required")
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Register creates a new account. The response token may be empty.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthResponse, error) {
	return c.postAuth(ctx, registerPath, payload)
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return c.postAuth(ctx, loginPath, creds)
}

func (c *Client) postAuth(ctx context.Context, path string, body any) (*AuthResponse, error) {
	if ctx == nil {
		return nil, errors.New("account: context is required")
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("account: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("account: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account: %s: %w", path, err)
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil {
		return nil, fmt.Errorf("account: read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, apierrorFromResponse(res.StatusCode, data)
	}

	var out AuthResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("account: decode response: %w", err)
	}
	return &out, nil
}
