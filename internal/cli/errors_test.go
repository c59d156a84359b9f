package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
)

func TestAuthRequiredError(t *testing.T) {
	t.Run("error message includes endpoint and guidance", func(t *testing.T) {
		err := &AuthRequiredError{Endpoint: "https://api.wayfarer.travel"}
		msg := err.Error()

		if !strings.Contains(msg, "https://api.wayfarer.travel") {
			t.Error("expected error message to contain endpoint")
		}
		if !strings.Contains(msg, "tripctl auth login") {
			t.Error("expected error message to contain login command")
		}
		if !strings.Contains(msg, "tripctl auth status") {
			t.Error("expected error message to contain status command")
		}
	})

	t.Run("Is returns true for same type", func(t *testing.T) {
		err1 := &AuthRequiredError{Endpoint: "https://example.com"}
		err2 := &AuthRequiredError{Endpoint: "https://other.com"}

		if !err1.Is(err2) {
			t.Error("expected Is to return true for same type")
		}
	})

	t.Run("Is returns false for different type", func(t *testing.T) {
		err1 := &AuthRequiredError{Endpoint: "https://example.com"}
		err2 := errors.New("some error")

		if err1.Is(err2) {
			t.Error("expected Is to return false for different type")
		}
	})

	t.Run("errors.Is works with wrapped error", func(t *testing.T) {
		authErr := &AuthRequiredError{Endpoint: "https://example.com"}
		wrappedErr := fmt.Errorf("wrapped: %w", authErr)

		if !errors.Is(wrappedErr, &AuthRequiredError{}) {
			t.Error("expected errors.Is to find wrapped AuthRequiredError")
		}
	})
}

func TestAuthExpiredError(t *testing.T) {
	t.Run("error message includes endpoint and guidance", func(t *testing.T) {
		err := &AuthExpiredError{Endpoint: "https://api.wayfarer.travel"}
		msg := err.Error()

		if !strings.Contains(msg, "https://api.wayfarer.travel") {
			t.Error("expected error message to contain endpoint")
		}
		if !strings.Contains(msg, "tripctl auth login") {
			t.Error("expected error message to contain login command")
		}
		if !strings.Contains(msg, "expired") {
			t.Error("expected error message to mention 'expired'")
		}
	})

	t.Run("Is returns false for AuthRequiredError", func(t *testing.T) {
		err1 := &AuthExpiredError{Endpoint: "https://example.com"}
		err2 := &AuthRequiredError{Endpoint: "https://example.com"}

		if err1.Is(err2) {
			t.Error("expected Is to return false for AuthRequiredError")
		}
	})
}

func TestAuthFailedError(t *testing.T) {
	t.Run("error message includes reason and retry command", func(t *testing.T) {
		err := &AuthFailedError{
			Endpoint: "https://www.wayfarer.travel",
			Reason:   errors.New("login failed: Invalid email or password"),
		}
		msg := err.Error()

		if !strings.Contains(msg, "Invalid email or password") {
			t.Error("expected error message to contain the underlying reason")
		}
		if !strings.Contains(msg, "tripctl auth login") {
			t.Error("expected error message to contain retry command")
		}
	})

	t.Run("Unwrap returns the reason", func(t *testing.T) {
		reason := errors.New("boom")
		err := &AuthFailedError{Endpoint: "https://example.com", Reason: reason}

		if !errors.Is(err, reason) {
			t.Error("expected errors.Is to find the wrapped reason")
		}
	})
}

func TestConnectionError(t *testing.T) {
	t.Run("error message names the endpoint and the failure class", func(t *testing.T) {
		err := &ConnectionError{
			Endpoint: "https://api.wayfarer.travel",
			Type:     ConnectionErrorNetwork,
			Reason:   errors.New("dial tcp: connection refused"),
		}
		msg := err.Error()

		if !strings.Contains(msg, "Network error") {
			t.Errorf("expected message to contain failure class, got %q", msg)
		}
		if !strings.Contains(msg, "https://api.wayfarer.travel") {
			t.Error("expected message to contain endpoint")
		}
		if !strings.Contains(msg, "connection refused") {
			t.Error("expected message to contain underlying reason")
		}
	})

	t.Run("Unwrap returns the reason", func(t *testing.T) {
		reason := errors.New("refused")
		err := &ConnectionError{Endpoint: "x", Type: ConnectionErrorNetwork, Reason: reason}

		if !errors.Is(err, reason) {
			t.Error("expected errors.Is to find the wrapped reason")
		}
	})
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ConnectionErrorType
	}{
		{
			name:     "nil error returns nil",
			err:      nil,
			expected: ConnectionErrorUnknown,
		},
		{
			name:     "certificate error",
			err:      x509.UnknownAuthorityError{},
			expected: ConnectionErrorTLS,
		},
		{
			name:     "tls keyword in message",
			err:      errors.New("tls: handshake failure"),
			expected: ConnectionErrorTLS,
		},
		{
			name:     "dns error",
			err:      &net.DNSError{Err: "no such host", Name: "api.wayfarer.travel", IsNotFound: true},
			expected: ConnectionErrorDNS,
		},
		{
			name:     "url error timeout",
			err:      &url.Error{Op: "Get", URL: "https://api.wayfarer.travel", Err: context.DeadlineExceeded},
			expected: ConnectionErrorTimeout,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:443: connect: connection refused"),
			expected: ConnectionErrorNetwork,
		},
		{
			name:     "unclassified",
			err:      errors.New("something odd happened"),
			expected: ConnectionErrorUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyConnectionError(tt.err, "https://api.wayfarer.travel")
			if tt.err == nil {
				if result != nil {
					t.Error("expected nil result for nil error")
				}
				return
			}
			if result == nil {
				t.Fatal("expected non-nil result")
			}
			if result.Type != tt.expected {
				t.Errorf("Type = %v, want %v", result.Type, tt.expected)
			}
			if result.Endpoint != "https://api.wayfarer.travel" {
				t.Errorf("Endpoint = %q, want the probed endpoint", result.Endpoint)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(errors.New("boom")); got != "Error: boom" {
		t.Errorf("FormatError = %q, want %q", got, "Error: boom")
	}
}
