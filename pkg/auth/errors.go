package auth

import (
	"fmt"
)

// StateMismatchError indicates the state parameter returned in the final
// redirect does not match the one generated for this attempt. This is the
// CSRF defense for the whole flow and is always fatal; it must never be
// downgraded to a warning.
type StateMismatchError struct{}

// Error returns the error message. The state values themselves are not
// included to keep them out of logs.
func (e *StateMismatchError) Error() string {
	return "OAuth state mismatch: the login response does not belong to this authentication attempt"
}

// Is allows errors.Is() to work with wrapped errors.
func (e *StateMismatchError) Is(target error) bool {
	_, ok := target.(*StateMismatchError)
	return ok
}

// CodeNotFoundError indicates the final redirect contained no authorization
// code parameter.
type CodeNotFoundError struct {
	// Target is the redirect URL that was inspected.
	Target string
}

// Error returns the error message.
func (e *CodeNotFoundError) Error() string {
	return fmt.Sprintf("authorization code not found in redirect %q", e.Target)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *CodeNotFoundError) Is(target error) bool {
	_, ok := target.(*CodeNotFoundError)
	return ok
}

// ExchangeError indicates the token endpoint rejected the exchange or
// returned an unusable response. The upstream status and body are preserved
// for diagnosis.
type ExchangeError struct {
	// StatusCode is the HTTP status returned by the token endpoint.
	StatusCode int
	// Body is the raw response body.
	Body string
	// Reason is set when the response status was acceptable but the payload
	// was not (e.g. a 200 without an access_token field).
	Reason string
}

// Error returns the error message including the upstream status and body.
func (e *ExchangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("token exchange failed: %s (status %d: %s)", e.Reason, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("token exchange failed with status %d: %s", e.StatusCode, e.Body)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ExchangeError) Is(target error) bool {
	_, ok := target.(*ExchangeError)
	return ok
}
