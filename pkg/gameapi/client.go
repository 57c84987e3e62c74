package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/wordgrid/wordgrid-web/internal/config"
	"github.com/wordgrid/wordgrid-web/pkg/logger"
)

// Client is the single point through which pages perform authenticated calls
// against the proxy layer, and the sole owner of the session store's
// credential/summary lifecycle. Every outbound call runs under a per-attempt
// timeout; a timed-out attempt is retried after a fixed delay up to the
// configured budget. Nothing else is retried, and there is no backoff, no
// jitter and no cross-request deduplication.
type Client struct {
	baseURL string
	store   SessionStore
	http    *http.Client

	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
}

// New builds a Client against the given proxy base URL. Zero values in cc
// fall back to the config package defaults.
func New(baseURL string, store SessionStore, cc config.ClientConfig) *Client {
	if cc.Timeout <= 0 {
		cc.Timeout = 8 * time.Second
	}
	if cc.MaxAttempts <= 0 {
		cc.MaxAttempts = 3
	}
	if cc.RetryDelay <= 0 {
		cc.RetryDelay = 500 * time.Millisecond
	}
	return &Client{
		baseURL: baseURL,
		store:   store,
		http: &http.Client{Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}},
		timeout:     cc.Timeout,
		maxAttempts: cc.MaxAttempts,
		retryDelay:  cc.RetryDelay,
	}
}

// do issues one request with the shared execution policy: bearer header when
// a credential is stored, per-attempt timeout, fixed-delay retry on timeout
// only. Returns the raw body and status of the final attempt.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		raw, status, err := c.attempt(ctx, method, path, body)
		if err == nil {
			return raw, status, nil
		}
		lastErr = err
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, err
		}
		logger.Warnf("gameapi: %s %s timed out (attempt %d/%d)", method, path, attempt, c.maxAttempts)
		if attempt < c.maxAttempts {
			time.Sleep(c.retryDelay)
		}
	}
	return nil, 0, errors.Join(ErrTimeout, lastErr)
}

func (c *Client) attempt(ctx context.Context, method, path string, body []byte) ([]byte, int, error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok, ok := c.store.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}

// call wraps do with the shared response classification: 401 tears down the
// stored session, other non-2xx carries the upstream message, 2xx decodes
// into out when given.
func (c *Client) call(ctx context.Context, method, path string, body []byte, out interface{}) error {
	raw, status, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		c.store.ClearToken()
		c.store.ClearUser()
		return ErrAuthentication
	}
	if status < 200 || status > 299 {
		return &APIError{StatusCode: status, Message: upstreamMessage(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}
	return nil
}

// upstreamMessage pulls a human-readable message out of an error body,
// falling back to a generic string when the body has none.
func upstreamMessage(raw []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "request failed"
}
