package wayfarer

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx response from the API. Message carries the server's
// error envelope text when the body had one; Body always carries the raw
// response for diagnosis.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the server-provided message, when present.
	Message string

	// Body is the raw response body.
	Body string
}

// newAPIError builds an APIError, probing the body for the standard error
// envelope.
func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}
	if msg := gjson.GetBytes(body, "message"); msg.Exists() {
		e.Message = msg.String()
	}
	return e
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// NotFound reports whether the error is a 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Unauthorized reports whether the error is a 401, meaning the token was
// rejected server-side.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
