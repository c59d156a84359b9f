package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractAuthorizationCode(t *testing.T) {
	tests := []struct {
		name   string
		target string
		state  string
		want   string
	}{
		{
			name:   "app scheme redirect",
			target: "wayfarer://auth/callback?code=abc123&state=state-1",
			state:  "state-1",
			want:   "abc123",
		},
		{
			name:   "relative path redirect",
			target: "/callback?code=abc123&state=state-1",
			state:  "state-1",
			want:   "abc123",
		},
		{
			name:   "https redirect",
			target: "https://www.wayfarer.travel/done?state=state-1&code=abc123",
			state:  "state-1",
			want:   "abc123",
		},
		{
			name:   "extra parameters ignored",
			target: "wayfarer://auth/callback?code=abc123&state=state-1&session_state=ignored",
			state:  "state-1",
			want:   "abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAuthorizationCode(tt.target, tt.state)
			if err != nil {
				t.Fatalf("ExtractAuthorizationCode(%q) error = %v", tt.target, err)
			}
			if got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAuthorizationCode_StateMismatch(t *testing.T) {
	_, err := ExtractAuthorizationCode("/callback?code=abc&state=attacker", "expected")
	if err == nil {
		t.Fatal("ExtractAuthorizationCode() accepted a mismatched state")
	}

	var mismatch *StateMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *StateMismatchError", err)
	}

	// Neither state value may leak into the message
	msg := err.Error()
	if strings.Contains(msg, "attacker") || strings.Contains(msg, "expected") {
		t.Errorf("error %q leaks state values", msg)
	}
}

func TestExtractAuthorizationCode_StateComparisonIsExact(t *testing.T) {
	// Byte-exact comparison: case differences are a mismatch
	_, err := ExtractAuthorizationCode("/callback?code=abc&state=State-1", "state-1")

	var mismatch *StateMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *StateMismatchError for a case difference", err)
	}
}

func TestExtractAuthorizationCode_MissingState(t *testing.T) {
	_, err := ExtractAuthorizationCode("/callback?code=abc", "state-1")

	var mismatch *StateMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *StateMismatchError when state is absent", err)
	}
}

func TestExtractAuthorizationCode_MissingCode(t *testing.T) {
	_, err := ExtractAuthorizationCode("/callback?state=state-1", "state-1")
	if err == nil {
		t.Fatal("ExtractAuthorizationCode() accepted a target without a code")
	}

	var notFound *CodeNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *CodeNotFoundError", err)
	}
}

func TestExtractAuthorizationCode_StateCheckedBeforeCode(t *testing.T) {
	// A target missing both fails on state first: nothing from an
	// unvalidated redirect is trusted
	_, err := ExtractAuthorizationCode("/callback", "state-1")

	var mismatch *StateMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *StateMismatchError", err)
	}
}
