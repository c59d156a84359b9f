package auth

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultExpiryMargin is subtracted from the server-reported token lifetime
// when computing the cached expiry. A token is treated as expired slightly
// before the server would reject it, accounting for clock skew and the time
// an in-flight request may spend on the wire.
const DefaultExpiryMargin = 30 * time.Second

// Token represents a Wayfarer access token with associated metadata.
type Token struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds (from the token response).
	ExpiresIn int `json:"expires_in,omitempty"`

	// ExpiresAt is the calculated expiration timestamp, margin already
	// applied. Zero until SetExpiresAtFromExpiresIn is called.
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	// Scope is the granted scope(s), space-separated.
	Scope string `json:"scope,omitempty"`
}

// IsExpired checks if the token has expired. ExpiresAt already carries the
// safety margin, so no additional buffer is applied here.
func (t *Token) IsExpired() bool {
	if t.ExpiresAt.IsZero() {
		return false // Tokens without expiration don't expire
	}
	return time.Now().After(t.ExpiresAt)
}

// Valid reports whether the token is usable: non-empty and not expired.
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.IsExpired()
}

// SetExpiresAtFromExpiresIn calculates and sets ExpiresAt from ExpiresIn,
// applying DefaultExpiryMargin. It is a no-op when ExpiresAt is already set
// or no lifetime was reported.
func (t *Token) SetExpiresAtFromExpiresIn() {
	if t.ExpiresIn > 0 && t.ExpiresAt.IsZero() {
		t.ExpiresAt = time.Now().Add(time.Duration(t.ExpiresIn)*time.Second - DefaultExpiryMargin)
	}
}

// Scopes returns the scope as a slice of individual scopes.
func (t *Token) Scopes() []string {
	if t.Scope == "" {
		return nil
	}
	return strings.Fields(t.Scope)
}

// ToOAuth2Token converts the Token to an oauth2.Token for compatibility with
// golang.org/x/oauth2 consumers.
func (t *Token) ToOAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		Expiry:      t.ExpiresAt,
	}
}
