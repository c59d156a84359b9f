package cli

import (
	"context"

	"tripctl/pkg/auth"
)

// TokenSource is the slice of the authenticator the adapter needs: a way to
// obtain a token and a way to inspect the cache without network traffic.
// *auth.Authenticator satisfies it.
type TokenSource interface {
	Authenticate(ctx context.Context) (*auth.Token, error)
	Status() *auth.Status
}

// AuthAdapter bridges the authenticator into the API client's token provider,
// translating low-level sign-in failures into the actionable CLI errors that
// drive exit codes and user guidance.
//
// When no credentials are configured the adapter refuses to start a login
// flow: commands then fail fast with AuthRequiredError (or AuthExpiredError
// for a stale cache) instead of submitting an empty login form.
type AuthAdapter struct {
	source   TokenSource
	endpoint string
	canLogin bool
}

// NewAuthAdapter creates an adapter around source. canLogin reports whether
// credentials are available for a non-interactive sign-in.
func NewAuthAdapter(source TokenSource, endpoint string, canLogin bool) *AuthAdapter {
	return &AuthAdapter{
		source:   source,
		endpoint: endpoint,
		canLogin: canLogin,
	}
}

// Authenticate satisfies the API client's TokenProvider contract.
func (a *AuthAdapter) Authenticate(ctx context.Context) (*auth.Token, error) {
	if !a.canLogin {
		status := a.source.Status()
		if !status.HasToken {
			return nil, &AuthRequiredError{Endpoint: a.endpoint}
		}
		if !status.Authenticated {
			return nil, &AuthExpiredError{Endpoint: a.endpoint}
		}
	}

	token, err := a.source.Authenticate(ctx)
	if err != nil {
		return nil, &AuthFailedError{Endpoint: a.endpoint, Reason: err}
	}
	return token, nil
}
