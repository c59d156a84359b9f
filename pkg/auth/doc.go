// Package auth implements authentication against the Wayfarer service.
//
// Wayfarer exposes no automation-friendly authorization endpoint; the only
// supported login is the interactive browser form. This package therefore
// completes the OAuth Authorization-Code-with-PKCE exchange by emulating a
// browser session (see tripctl/pkg/browser): it establishes a cookie-backed
// session, resolves and resubmits the HTML login form, detects the post-login
// redirect, validates the anti-forgery state, and exchanges the authorization
// code for an access token.
//
// # Core Components
//
//   - Token: access token representation with expiry margin handling
//   - FileCache: fail-open persistent token cache
//   - PKCE: Proof Key for Code Exchange generation (RFC 7636)
//   - Client: token endpoint operations and authorize URL construction
//   - Authenticator: the end-to-end flow, exposed as Authenticate()
//
// # Usage
//
//	import "tripctl/pkg/auth"
//
//	a, err := auth.NewAuthenticator(auth.Credentials{
//	    ClientID: clientID,
//	    Username: username,
//	    Password: password,
//	})
//	token, err := a.Authenticate(ctx)
//
// Authenticate is cheap to call repeatedly: a valid cached token is returned
// without any network activity.
package auth
