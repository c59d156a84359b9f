package browser

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

// DefaultTimeout bounds each request of the login flow. The upstream login
// pages offer no SLA; without a bound a hung server stalls the CLI
// indefinitely.
const DefaultTimeout = 30 * time.Second

// Session is a cookie-bearing HTTP client scoped to one login attempt.
//
// Every request of the flow (warm-up GET, redirect-following GETs, form POST)
// goes through the same Session so cookies set on the first response are sent
// on all subsequent requests. Redirects are never followed automatically;
// callers resolve Location targets themselves so each hop can be logged and
// bounded.
type Session struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHTTPClient bases the session on a custom HTTP client. The session
// still installs its own cookie jar and disables automatic redirects; the
// given client's transport and timeout are retained. The caller's client is
// not modified.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Session) {
		clone := *client
		s.client = &clone
	}
}

// WithTransport sets a custom transport, e.g. NewFirefoxTransport() for
// fingerprint-sensitive servers.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Session) {
		s.client.Transport = rt
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session with a fresh, empty cookie jar. A new session
// must be created per login attempt; jars are never shared or persisted.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		client: &http.Client{Timeout: DefaultTimeout},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	s.client.Jar = jar
	s.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return s, nil
}

// Get issues a browser-headed GET without following redirects. The response
// body is transparently decompressed.
func (s *Session) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}
	applyBrowserHeaders(req.Header)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if err := decodeBody(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// PostForm issues a browser-headed urlencoded POST. Origin and Referer are
// set to the page that served the form; some anti-CSRF checks require them.
func (s *Session) PostForm(ctx context.Context, action, body, refererURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, action, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create form POST for %s: %w", action, err)
	}
	applyBrowserHeaders(req.Header)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if refererURL != "" {
		req.Header.Set("Referer", refererURL)
		if origin := originOf(refererURL); origin != "" {
			req.Header.Set("Origin", origin)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if err := decodeBody(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// WarmUp fetches a neutral landing page to establish baseline session
// cookies. Some servers refuse an authorize request from a cookie-less
// client. The response status is irrelevant; only transport failures matter.
func (s *Session) WarmUp(ctx context.Context, landingURL string) error {
	resp, err := s.Get(ctx, landingURL)
	if err != nil {
		return fmt.Errorf("warm-up request to %s failed: %w", landingURL, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	s.logger.Debug("Session warm-up complete",
		"url", landingURL,
		"status", resp.StatusCode)
	return nil
}

// decodeBody replaces a compressed response body with a decompressing
// reader. Needed because the session advertises Accept-Encoding itself, which
// disables net/http's automatic gzip handling.
func decodeBody(resp *http.Response) error {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	if encoding == "" || encoding == "identity" {
		return nil
	}

	orig := resp.Body
	switch encoding {
	case "gzip":
		gz, err := gzip.NewReader(orig)
		if err != nil {
			return fmt.Errorf("failed to decode gzip response: %w", err)
		}
		resp.Body = &decodedBody{reader: gz, closers: []io.Closer{gz, orig}}
	case "deflate":
		fr := flate.NewReader(orig)
		resp.Body = &decodedBody{reader: fr, closers: []io.Closer{fr, orig}}
	case "br":
		resp.Body = &decodedBody{reader: brotli.NewReader(orig), closers: []io.Closer{orig}}
	default:
		// Pass unknown encodings through untouched.
		return nil
	}

	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	return nil
}

// decodedBody chains a decompressing reader with the closers it owns.
type decodedBody struct {
	reader  io.Reader
	closers []io.Closer
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	var firstErr error
	for _, c := range b.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
