package gameapi

import (
	"errors"
	"fmt"
)

// ErrAuthentication marks a 401 from the proxy layer. The client clears its
// stored session before returning it; callers typically redirect to sign-in.
var ErrAuthentication = errors.New("authentication failed")

// ErrTimeout marks a request whose retry budget was exhausted by timeouts.
var ErrTimeout = errors.New("request timed out")

// APIError carries the upstream-provided message for any other non-2xx
// response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}
