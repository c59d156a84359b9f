package wayfarer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	retry "github.com/appleboy/go-httpretry"
	"github.com/google/uuid"

	"tripctl/pkg/auth"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.wayfarer.travel"

// defaultTimeout bounds each API request.
const defaultTimeout = 30 * time.Second

// TokenProvider supplies a valid access token for API calls.
// *auth.Authenticator satisfies this.
type TokenProvider interface {
	Authenticate(ctx context.Context) (*auth.Token, error)
}

// Client is the Wayfarer API client.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	retry      *retry.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client the retry layer wraps.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an API client authenticating through the given provider.
func NewClient(tokens TokenProvider, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	retryClient, err := retry.NewBackgroundClient(
		retry.WithHTTPClient(c.httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create retry client: %w", err)
	}
	c.retry = retryClient

	return c, nil
}

// do runs one authenticated API request and returns the response body.
// Non-2xx responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	tok, err := c.tokens.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("API request",
		"method", method,
		"path", path,
		"request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.retry.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// getJSON runs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// sendJSON runs a request with a JSON payload and decodes the response into
// out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload []byte, out any) error {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// delete runs a DELETE, discarding any response body.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
