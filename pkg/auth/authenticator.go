package auth

import (
	"context"
	"fmt"
	"log/slog"

	"tripctl/pkg/browser"
)

// Credentials are the inputs to an authentication attempt.
type Credentials struct {
	// ClientID identifies the OAuth client.
	ClientID string

	// ClientSecret is accepted so configuration written for confidential
	// clients keeps working, but it is never transmitted: the flow runs as a
	// public client and PKCE replaces the secret.
	ClientSecret string

	// Username and Password are submitted to the login form.
	Username string
	Password string
}

// Endpoints locates the OAuth surface of the trip service.
type Endpoints struct {
	// AuthorizeURL is the authorization endpoint the login flow starts from.
	AuthorizeURL string

	// TokenURL is the token endpoint codes are exchanged at.
	TokenURL string

	// LandingURL is fetched once before the flow to pick up session cookies.
	LandingURL string

	// RedirectURI is the registered callback the server redirects to with
	// the authorization code. It uses a custom scheme and is never fetched.
	RedirectURI string

	// Scope is the space-separated scope string requested at authorization.
	Scope string
}

// DefaultEndpoints returns the production Wayfarer endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AuthorizeURL: "https://www.wayfarer.travel/oauth2/authorize",
		TokenURL:     "https://api.wayfarer.travel/oauth2/token",
		LandingURL:   "https://www.wayfarer.travel/",
		RedirectURI:  "wayfarer://auth/callback",
		Scope:        "trips:read trips:write offline_access",
	}
}

// Authenticator runs the full login flow: token cache fast path, cookie
// warm-up, login form resolution and submission, authorization code
// extraction, and the PKCE token exchange.
type Authenticator struct {
	creds     Credentials
	endpoints Endpoints
	cache     *FileCache
	exchange  *Client
	logger    *slog.Logger

	sessionOpts []browser.Option

	// Injectable for tests.
	newSession    func(opts ...browser.Option) (*browser.Session, error)
	generatePKCE  func() (*PKCEChallenge, error)
	generateState func() (string, error)
}

// AuthenticatorOption configures an Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithEndpoints overrides the default endpoints.
func WithEndpoints(endpoints Endpoints) AuthenticatorOption {
	return func(a *Authenticator) {
		a.endpoints = endpoints
	}
}

// WithTokenCache sets the token cache. Without this option the default
// cache path under the user's home directory is used.
func WithTokenCache(cache *FileCache) AuthenticatorOption {
	return func(a *Authenticator) {
		a.cache = cache
	}
}

// WithExchangeClient sets the client used for the token exchange.
func WithExchangeClient(client *Client) AuthenticatorOption {
	return func(a *Authenticator) {
		a.exchange = client
	}
}

// WithSessionOptions passes options through to each browser session the
// authenticator creates.
func WithSessionOptions(opts ...browser.Option) AuthenticatorOption {
	return func(a *Authenticator) {
		a.sessionOpts = append(a.sessionOpts, opts...)
	}
}

// WithFlowLogger sets the logger for flow progress.
func WithFlowLogger(logger *slog.Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// NewAuthenticator creates an authenticator for the given credentials.
func NewAuthenticator(creds Credentials, opts ...AuthenticatorOption) (*Authenticator, error) {
	a := &Authenticator{
		creds:         creds,
		endpoints:     DefaultEndpoints(),
		logger:        slog.Default(),
		newSession:    browser.NewSession,
		generatePKCE:  GeneratePKCE,
		generateState: GenerateState,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.exchange == nil {
		a.exchange = NewClient(WithLogger(a.logger))
	}
	if a.cache == nil {
		cache, err := NewFileCache("")
		if err != nil {
			return nil, fmt.Errorf("failed to set up token cache: %w", err)
		}
		a.cache = cache
	}

	return a, nil
}

// Authenticate returns a valid access token, reusing the cached one when it
// has not expired and running the full login flow otherwise.
//
// A token obtained through the full flow is cached best-effort: a cache
// write failure is logged and the token is still returned.
func (a *Authenticator) Authenticate(ctx context.Context) (*Token, error) {
	if tok := a.cache.Load(); tok != nil && tok.Valid() {
		a.logger.Debug("Using cached token",
			"path", a.cache.Path(),
			"expires_at", tok.ExpiresAt)
		return tok, nil
	}

	tok, err := a.login(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Save(tok); err != nil {
		a.logger.Warn("Failed to cache token, continuing without cache",
			"path", a.cache.Path(),
			"error", err)
	}

	return tok, nil
}

// login runs the browser-emulation flow end to end.
func (a *Authenticator) login(ctx context.Context) (*Token, error) {
	// Firefox TLS fingerprint by default; later session options may replace
	// the transport.
	session, err := a.newSession(append([]browser.Option{
		browser.WithTransport(browser.NewFirefoxTransport()),
		browser.WithLogger(a.logger),
	}, a.sessionOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser session: %w", err)
	}

	if a.endpoints.LandingURL != "" {
		if err := session.WarmUp(ctx, a.endpoints.LandingURL); err != nil {
			return nil, err
		}
	}

	pkce, err := a.generatePKCE()
	if err != nil {
		return nil, err
	}
	state, err := a.generateState()
	if err != nil {
		return nil, err
	}

	authorizeURL, err := a.exchange.BuildAuthorizeURL(
		a.endpoints.AuthorizeURL,
		a.creds.ClientID,
		a.endpoints.RedirectURI,
		state,
		a.endpoints.Scope,
		pkce,
	)
	if err != nil {
		return nil, err
	}

	form, err := session.ResolveLoginForm(ctx, authorizeURL)
	if err != nil {
		return nil, err
	}

	target, err := session.SubmitLoginForm(ctx, form, a.creds.Username, a.creds.Password)
	if err != nil {
		return nil, err
	}

	code, err := ExtractAuthorizationCode(target, state)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Authorization code obtained, exchanging for token")

	return a.exchange.ExchangeCode(
		ctx,
		a.endpoints.TokenURL,
		code,
		a.endpoints.RedirectURI,
		a.creds.ClientID,
		pkce.CodeVerifier,
	)
}

// Logout removes the cached token.
func (a *Authenticator) Logout() error {
	return a.cache.Clear()
}

// CachePath returns the location of the token cache file.
func (a *Authenticator) CachePath() string {
	return a.cache.Path()
}

// Status reports the local authentication state without touching the
// network.
func (a *Authenticator) Status() *Status {
	status := &Status{
		CachePath: a.cache.Path(),
	}

	tok := a.cache.Load()
	if tok == nil {
		return status
	}

	status.HasToken = true
	status.Authenticated = tok.Valid()
	status.ExpiresAt = tok.ExpiresAt
	status.TokenType = tok.TokenType
	status.Scope = tok.Scope
	return status
}
