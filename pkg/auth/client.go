package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultHTTPTimeout is the default timeout for token endpoint requests.
const DefaultHTTPTimeout = 30 * time.Second

// Client performs the direct token endpoint operations of the flow. No HTML
// is involved here; the browser-session emulation ends once the authorization
// code is extracted.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the token client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new token client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ExchangeCode exchanges an authorization code for a token.
//
// This is a public-client PKCE exchange: the request carries the code
// verifier and never a client secret. A non-2xx response, or a 2xx response
// without an access_token field, yields an *ExchangeError carrying the
// upstream status and body.
func (c *Client) ExchangeCode(ctx context.Context, tokenEndpoint, code, redirectURI, clientID, codeVerifier string) (*Token, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
		"client_id":     {clientID},
		"code_verifier": {codeVerifier},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("Token exchange rejected",
			"status", resp.StatusCode,
			"body", string(body))
		return nil, &ExchangeError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Reason:     fmt.Sprintf("unparseable token response: %v", err),
		}
	}

	// Guard against servers returning 200 with an error payload.
	if token.AccessToken == "" {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Reason:     "no access_token in response",
		}
	}

	token.SetExpiresAtFromExpiresIn()

	return &token, nil
}

// BuildAuthorizeURL constructs the authorization URL that starts the
// browser-emulated login. response_mode=query and the action=sign_in hint
// match what the Wayfarer web client sends.
func (c *Client) BuildAuthorizeURL(authEndpoint, clientID, redirectURI, state, scope string, pkce *PKCEChallenge) (string, error) {
	authURL, err := url.Parse(authEndpoint)
	if err != nil {
		return "", fmt.Errorf("invalid authorization endpoint: %w", err)
	}

	query := authURL.Query()
	query.Set("response_type", "code")
	query.Set("client_id", clientID)
	query.Set("redirect_uri", redirectURI)
	query.Set("state", state)
	query.Set("response_mode", "query")
	query.Set("action", "sign_in")

	if scope != "" {
		query.Set("scope", scope)
	}

	if pkce != nil {
		query.Set("code_challenge", pkce.CodeChallenge)
		query.Set("code_challenge_method", pkce.CodeChallengeMethod)
	}

	authURL.RawQuery = query.Encode()
	return authURL.String(), nil
}
