package browser

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSession_BrowserHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	resp, err := s.Get(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if ua := got.Get("User-Agent"); !strings.Contains(ua, "Firefox") {
		t.Errorf("User-Agent = %q, want a Firefox user agent", ua)
	}
	checks := map[string]string{
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip, deflate, br",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "same-origin",
	}
	for key, want := range checks {
		if v := got.Get(key); v != want {
			t.Errorf("header %s = %q, want %q", key, v, want)
		}
	}
	if accept := got.Get("Accept"); !strings.Contains(accept, "text/html") {
		t.Errorf("Accept = %q, want an HTML accept header", accept)
	}
}

func TestSession_CookieRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/set":
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s-1", Path: "/"})
		case "/check":
			c, err := r.Cookie("sid")
			if err != nil || c.Value != "s-1" {
				t.Error("cookie from the first response not sent back")
			}
		}
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	for _, path := range []string{"/set", "/check"} {
		resp, err := s.Get(t.Context(), server.URL+path)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", path, err)
		}
		resp.Body.Close()
	}
}

func TestSession_JarsAreNotShared(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/set":
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s-1", Path: "/"})
		case "/check":
			if _, err := r.Cookie("sid"); err == nil {
				t.Error("fresh session carried another session's cookie")
			}
		}
	}))
	t.Cleanup(server.Close)

	first := newTestSession(t)
	resp, err := first.Get(t.Context(), server.URL+"/set")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	second := newTestSession(t)
	resp, err = second.Get(t.Context(), server.URL+"/check")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
}

func TestSession_DoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	resp, err := s.Get(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer resp.Body.Close()

	// The redirect response itself comes back, not its target
	if resp.StatusCode != http.StatusFound {
		t.Errorf("status = %d, want the undisturbed 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/elsewhere" {
		t.Errorf("Location = %q, want %q", loc, "/elsewhere")
	}
}

func TestSession_DecodesCompressedBodies(t *testing.T) {
	const payload = "<html><body>compressed page</body></html>"

	tests := []struct {
		encoding string
		compress func(w io.Writer) io.WriteCloser
	}{
		{"gzip", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }},
		{"deflate", func(w io.Writer) io.WriteCloser {
			fw, _ := flate.NewWriter(w, flate.DefaultCompression)
			return fw
		}},
		{"br", func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) }},
	}

	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", tt.encoding)
				cw := tt.compress(w)
				io.WriteString(cw, payload)
				cw.Close()
			}))
			t.Cleanup(server.Close)

			s := newTestSession(t)
			resp, err := s.Get(t.Context(), server.URL)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("reading decoded body: %v", err)
			}
			if string(body) != payload {
				t.Errorf("body = %q, want the decompressed payload", body)
			}
			if resp.Header.Get("Content-Encoding") != "" {
				t.Error("Content-Encoding still set after transparent decoding")
			}
		})
	}
}

func TestSession_PostFormHeaders(t *testing.T) {
	var got http.Header
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	resp, err := s.PostForm(t.Context(), server.URL+"/submit", "a=1&b=2", server.URL+"/login")
	if err != nil {
		t.Fatalf("PostForm() error = %v", err)
	}
	resp.Body.Close()

	if ct := got.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", ct)
	}
	if ref := got.Get("Referer"); ref != server.URL+"/login" {
		t.Errorf("Referer = %q, want the login page", ref)
	}
	if origin := got.Get("Origin"); origin != server.URL {
		t.Errorf("Origin = %q, want %q", origin, server.URL)
	}
	if gotBody != "a=1&b=2" {
		t.Errorf("body = %q, want it forwarded verbatim", gotBody)
	}
}

func TestSession_WarmUpIgnoresStatus(t *testing.T) {
	sawCookie := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			http.SetCookie(w, &http.Cookie{Name: "warm", Value: "1", Path: "/"})
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/next":
			if _, err := r.Cookie("warm"); err == nil {
				sawCookie = true
			}
		}
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)

	// Warm-up is about cookies, not content; a 5xx is not an error
	if err := s.WarmUp(t.Context(), server.URL); err != nil {
		t.Errorf("WarmUp() error = %v, want nil for a 503", err)
	}

	resp, err := s.Get(t.Context(), server.URL+"/next")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
	if !sawCookie {
		t.Error("warm-up cookie not retained in the jar")
	}
}

func TestSession_WarmUpPropagatesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	s := newTestSession(t)
	if err := s.WarmUp(t.Context(), server.URL); err == nil {
		t.Error("WarmUp() = nil for an unreachable server")
	}
}

func TestSession_WithHTTPClientDoesNotMutateCaller(t *testing.T) {
	original := &http.Client{}

	s, err := NewSession(WithHTTPClient(original), WithLogger(discardLogger()))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if original.Jar != nil {
		t.Error("caller's client got a cookie jar installed")
	}
	if original.CheckRedirect != nil {
		t.Error("caller's client got its redirect policy changed")
	}
	if s.client == original {
		t.Error("session uses the caller's client instance directly")
	}
}
