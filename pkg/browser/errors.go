package browser

import (
	"fmt"
)

// FormNotFoundError indicates the page reached from the authorize URL does
// not contain a username/password form. This usually means the login page
// layout changed or a bot challenge was served instead; retrying will not
// help.
type FormNotFoundError struct {
	// URL is the page that was inspected.
	URL string
}

// Error returns the error message.
func (e *FormNotFoundError) Error() string {
	return fmt.Sprintf("login form not found at %s", e.URL)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *FormNotFoundError) Is(target error) bool {
	_, ok := target.(*FormNotFoundError)
	return ok
}

// TooManyRedirectsError indicates the redirect chain from the authorize URL
// exceeded the hop limit. This guards against redirect loops from a
// misbehaving or changed server.
type TooManyRedirectsError struct {
	// Hops is the number of redirects followed before giving up.
	Hops int
}

// Error returns the error message.
func (e *TooManyRedirectsError) Error() string {
	return fmt.Sprintf("too many redirects while resolving the login form (%d hops)", e.Hops)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *TooManyRedirectsError) Is(target error) bool {
	_, ok := target.(*TooManyRedirectsError)
	return ok
}

// LoginFailedError indicates the server rejected the submitted credentials,
// either with an HTTP 403 or with an error message rendered into the
// response page. The server's own text is surfaced when available.
type LoginFailedError struct {
	// Reason is the server-provided failure text, or a description of the
	// rejection when the server gave none.
	Reason string
}

// Error returns the error message.
func (e *LoginFailedError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Reason)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *LoginFailedError) Is(target error) bool {
	_, ok := target.(*LoginFailedError)
	return ok
}

// RedirectNotFoundError indicates the login POST returned a 200 page in
// which no known redirect mechanism could be found. The server's completion
// mechanism is not a documented contract and may have changed.
type RedirectNotFoundError struct{}

// Error returns the error message.
func (e *RedirectNotFoundError) Error() string {
	return "could not find redirect URL in login response"
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RedirectNotFoundError) Is(target error) bool {
	_, ok := target.(*RedirectNotFoundError)
	return ok
}

// UnexpectedStatusError indicates a response status the login flow has no
// handling for.
type UnexpectedStatusError struct {
	// StatusCode is the HTTP status that was returned.
	StatusCode int
}

// Error returns the error message.
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected login response status %d", e.StatusCode)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UnexpectedStatusError) Is(target error) bool {
	_, ok := target.(*UnexpectedStatusError)
	return ok
}
