package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ConnectionErrorType categorizes the type of connection error.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates a network connectivity error (e.g., refused, unreachable).
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates a connection timeout.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return "Connection error"
	}
}

// ConnectionError indicates a failure to reach the trip service.
// It wraps the underlying error and provides categorization for better user feedback.
type ConnectionError struct {
	// Endpoint is the URL that could not be reached.
	Endpoint string
	// Type categorizes the connection error.
	Type ConnectionErrorType
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-friendly error message with actionable guidance.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf(`%s: could not reach %s

  %v

Check your network connection and the configured endpoint
(TRIPCTL_ENDPOINT or the endpoint setting in ~/.config/tripctl/config.yaml).`,
		e.Type, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

// ClassifyConnectionError analyzes an error and returns a ConnectionError with the appropriate type.
// If the error is nil, returns nil.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}

	if isTLSError(err) {
		return &ConnectionError{
			Endpoint: endpoint,
			Type:     ConnectionErrorTLS,
			Reason:   err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &ConnectionError{
			Endpoint: endpoint,
			Type:     ConnectionErrorDNS,
			Reason:   err,
		}
	}

	if isTimeoutError(err) {
		return &ConnectionError{
			Endpoint: endpoint,
			Type:     ConnectionErrorTimeout,
			Reason:   err,
		}
	}

	if isNetworkError(err.Error()) {
		return &ConnectionError{
			Endpoint: endpoint,
			Type:     ConnectionErrorNetwork,
			Reason:   err,
		}
	}

	return &ConnectionError{
		Endpoint: endpoint,
		Type:     ConnectionErrorUnknown,
		Reason:   err,
	}
}

// isTLSError checks if the error is related to TLS/certificate issues.
func isTLSError(err error) bool {
	if err == nil {
		return false
	}

	// Check for x509 certificate errors using errors.As
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	var systemRootsErr *x509.SystemRootsError

	if errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		errors.As(err, &unknownAuthErr) || errors.As(err, &systemRootsErr) {
		return true
	}

	// Also check error message for TLS-related keywords
	// Note: "certificate" is checked broadly as it covers most TLS-related error messages
	errStr := err.Error()
	tlsKeywords := []string{
		"x509:",
		"certificate",
		"tls:",
		"TLS handshake",
	}

	for _, keyword := range tlsKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}

	return false
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	// Check for net.Error timeout (interface, needs manual unwrapping)
	for e := err; e != nil; {
		if ne, ok := e.(net.Error); ok && ne.Timeout() {
			return true
		}
		if u, ok := e.(interface{ Unwrap() error }); ok {
			e = u.Unwrap()
		} else {
			break
		}
	}

	// Check for url.Error timeout
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	// Check error message
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isNetworkError checks if the error string indicates a network connectivity issue.
func isNetworkError(errStr string) bool {
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// AuthRequiredError indicates the user has no cached sign-in.
// Implements error with actionable guidance.
type AuthRequiredError struct {
	// Endpoint is the service that requires authentication.
	Endpoint string
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf(`Not signed in to %s

To sign in, run:
  tripctl auth login

To check current authentication status:
  tripctl auth status`, e.Endpoint)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *AuthRequiredError) Is(target error) bool {
	_, ok := target.(*AuthRequiredError)
	return ok
}

// AuthExpiredError indicates the cached token has expired.
// Implements error with actionable guidance.
type AuthExpiredError struct {
	// Endpoint is the service whose token has expired.
	Endpoint string
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf(`Your session with %s has expired

To sign in again, run:
  tripctl auth login`, e.Endpoint)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *AuthExpiredError) Is(target error) bool {
	_, ok := target.(*AuthExpiredError)
	return ok
}

// AuthFailedError indicates an interactive sign-in attempt failed.
type AuthFailedError struct {
	// Endpoint is the service where authentication failed.
	Endpoint string
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthFailedError) Error() string {
	return fmt.Sprintf(`Authentication failed for %s: %v

Check your username and password, then retry with:
  tripctl auth login`, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *AuthFailedError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *AuthFailedError) Is(target error) bool {
	_, ok := target.(*AuthFailedError)
	return ok
}

// FormatError renders an error for terminal output.
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
