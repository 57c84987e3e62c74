package gameapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wordgrid/wordgrid-web/internal/models"
	"github.com/wordgrid/wordgrid-web/pkg/logger"
)

// SignIn exchanges credentials through the signin proxy route. On success the
// returned token and user summary are persisted to the session store; on any
// non-2xx nothing is persisted and the error carries the upstream message.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.SignInResponse, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	raw, status, err := c.do(ctx, http.MethodPost, "/api/proxy/signin", body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Message: upstreamMessage(raw)}
	}

	var resp models.SignInResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	c.store.SetToken(resp.Token)
	c.store.SetUser(resp.User)
	return &resp, nil
}

// SignOut unconditionally clears the persisted credential and cached user
// summary. It cannot fail; the server-side blacklist notification is
// best-effort and any error there is only logged.
func (c *Client) SignOut(ctx context.Context) {
	if _, ok := c.store.Token(); ok {
		if _, _, err := c.attempt(ctx, http.MethodPost, "/api/proxy/signout", nil); err != nil {
			logger.Debugf("gameapi: signout notification failed: %v", err)
		}
	}
	c.store.ClearToken()
	c.store.ClearUser()
}

// IsAuthenticated reports whether a credential is currently persisted. It
// does not validate the credential's signature or expiry.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.store.Token()
	return ok
}

// TokenExpired decodes the persisted credential's own exp claim (without
// signature verification) and compares it against the current time. A
// missing or undecodable credential conservatively reports expired. This is
// a UX optimization only; real authorization stays with the game backend.
func (c *Client) TokenExpired() bool {
	tok, ok := c.store.Token()
	if !ok {
		return true
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

// CachedUser returns the user summary persisted at last sign-in, when any.
// Not authoritative; use Profile for fresh data.
func (c *Client) CachedUser() (models.UserSummary, bool) {
	return c.store.User()
}
