package auth

import "time"

// Status describes the local authentication state. It is computed from the
// token cache alone and never touches the network, so `tripctl auth status`
// stays fast and works offline.
type Status struct {
	// Authenticated is true when a cached token exists and has not expired.
	Authenticated bool `json:"authenticated" yaml:"authenticated"`

	// HasToken is true when a cached token exists, expired or not.
	HasToken bool `json:"hasToken" yaml:"hasToken"`

	// CachePath is the token cache file location.
	CachePath string `json:"cachePath" yaml:"cachePath"`

	// ExpiresAt is when the cached token stops being used. Zero when no
	// token is cached.
	ExpiresAt time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`

	// TokenType is the cached token's type, normally "Bearer".
	TokenType string `json:"tokenType,omitempty" yaml:"tokenType,omitempty"`

	// Scope is the space-separated scope string granted with the token.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
}
