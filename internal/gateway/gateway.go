// Package gateway is the single authenticated HTTP boundary of the
// client. Every outbound call passes through it: it attaches ambient
// cookie credentials, applies one fixed timeout, and on a session
// expiry response performs one renewal and one exact replay.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"webshop-client/internal/logger"
	"webshop-client/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client-side request budget, matching the frontend tier of the
// backend's limiter so the client never trips it.
const (
	limitFrontend = rate.Limit(20)
	burstFrontend = 40
)

// RenewFunc exchanges the ambient credential for a refreshed one
// without re-entering a password. It must not route back through the
// retrying send path.
type RenewFunc func(ctx context.Context) error

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	limiter    *rate.Limiter
	renew      RenewFunc
}

func NewClient(baseURL string, timeout time.Duration, sessions *session.Store) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New with nil options cannot fail today
		panic(err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		sessions: sessions,
		limiter:  rate.NewLimiter(limitFrontend, burstFrontend),
	}
}

// SetRenewer wires the renewal hook. Set after construction because
// the auth service itself sends through this client.
func (c *Client) SetRenewer(renew RenewFunc) {
	c.renew = renew
}

// HTTPClient exposes the underlying client so tests can swap the
// transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do sends one authenticated request and decodes the JSON response
// into out when out is non-nil. A 401/403 on a not-yet-retried
// request triggers one renewal and one replay of the identical
// request; renewal failure clears the session store and returns
// ErrSessionExpired. Renewals are not deduplicated across concurrent
// calls: N in-flight 401s mean N renewal attempts.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			log.Error("failed to marshal request body", zap.Error(err))
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	status, data, err := c.send(ctx, method, path, payload)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return &Error{Message: genericErrorMessage}
	}

	if shouldRenew(status, false) {
		log.Info("session expiry response, attempting renewal", zap.Int("status", status))

		if c.renew == nil {
			return normalizeError(status, data)
		}
		if err := c.renew(ctx); err != nil {
			log.Warn("session renewal failed", zap.Error(err))
			c.sessions.Clear()
			return ErrSessionExpired
		}

		// Exactly one replay of the identical request.
		status, data, err = c.send(ctx, method, path, payload)
		if err != nil {
			log.Error("replayed request failed", zap.Error(err))
			return &Error{Message: genericErrorMessage}
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		log.Warn("request rejected", zap.Int("status", status))
		return normalizeError(status, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			log.Error("failed to decode response body", zap.Error(err))
			return &Error{Status: status, Message: genericErrorMessage}
		}
	}
	return nil
}

// DoOnce sends without the renewal wrapper. The renewal call itself
// uses this path so a failing refresh can never recurse.
func (c *Client) DoOnce(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	status, data, err := c.send(ctx, method, path, payload)
	if err != nil {
		return &Error{Message: genericErrorMessage}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return normalizeError(status, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Status: status, Message: genericErrorMessage}
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

// shouldRenew is the retry-once rule: a pure function of the response
// status and whether this request was already replayed.
func shouldRenew(status int, retried bool) bool {
	if retried {
		return false
	}
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// normalizeError extracts a human-readable message from the response
// body when one is present, else falls back to a generic message.
func normalizeError(status int, data []byte) *Error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := genericErrorMessage
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	return &Error{Status: status, Message: msg}
}
