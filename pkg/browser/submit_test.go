package browser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func loginForm(action, pageURL string) *LoginForm {
	return &LoginForm{
		Action:  action,
		PageURL: pageURL,
		Fields: []FormField{
			{Name: "csrf_token", Value: "abc123"},
			{Name: "username", Value: ""},
			{Name: "password", Value: ""},
		},
	}
}

func TestSubmitLoginForm_LocationRedirect(t *testing.T) {
	var rawBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rawBody = string(body)
		w.Header().Set("Location", "wayfarer://auth/callback?code=XYZ&state=S1")
		w.WriteHeader(http.StatusFound)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	form := loginForm(server.URL+"/submit", server.URL+"/login")

	target, err := s.SubmitLoginForm(t.Context(), form, "user@example.com", "secret")
	if err != nil {
		t.Fatalf("SubmitLoginForm() error = %v", err)
	}
	if target != "wayfarer://auth/callback?code=XYZ&state=S1" {
		t.Errorf("target = %q, want the Location value verbatim", target)
	}

	// The body keeps document order with the credentials filled in place
	want := "csrf_token=abc123&username=user%40example.com&password=secret"
	if rawBody != want {
		t.Errorf("submitted body = %q, want %q", rawBody, want)
	}
}

func TestSubmitLoginForm_SeeOtherRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/finish?code=XYZ&state=S1")
		w.WriteHeader(http.StatusSeeOther)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	target, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")
	if err != nil {
		t.Fatalf("SubmitLoginForm() error = %v", err)
	}
	if target != "/finish?code=XYZ&state=S1" {
		t.Errorf("target = %q, want the relative Location untouched", target)
	}
}

func TestSubmitLoginForm_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	_, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")

	var loginErr *LoginFailedError
	if !errors.As(err, &loginErr) {
		t.Fatalf("error = %v, want *LoginFailedError", err)
	}
}

func TestSubmitLoginForm_MetaRefresh(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "plain",
			body: `<html><head><meta http-equiv="refresh" content="0;URL=wayfarer://auth/callback?code=XYZ&state=S1"></head></html>`,
		},
		{
			name: "lowercase url key",
			body: `<html><head><meta http-equiv="refresh" content="0;url=wayfarer://auth/callback?code=XYZ&state=S1"></head></html>`,
		},
		{
			name: "quoted target",
			body: `<html><head><meta http-equiv="Refresh" content="0; URL='wayfarer://auth/callback?code=XYZ&state=S1'"></head></html>`,
		},
		{
			name: "with delay and spaces",
			body: `<html><head><meta http-equiv="refresh" content="3 ; URL = wayfarer://auth/callback?code=XYZ&state=S1"></head></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				fmt.Fprint(w, tt.body)
			}))
			t.Cleanup(server.Close)

			s := newTestSession(t)
			target, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")
			if err != nil {
				t.Fatalf("SubmitLoginForm() error = %v", err)
			}
			if target != "wayfarer://auth/callback?code=XYZ&state=S1" {
				t.Errorf("target = %q", target)
			}
		})
	}
}

func TestSubmitLoginForm_ScriptRedirect(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "window.location.href",
			body: `<html><body><script>window.location.href = 'wayfarer://auth/callback?code=XYZ&state=S1';</script></body></html>`,
		},
		{
			name: "window.location",
			body: `<html><body><script>window.location="wayfarer://auth/callback?code=XYZ&state=S1";</script></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				fmt.Fprint(w, tt.body)
			}))
			t.Cleanup(server.Close)

			s := newTestSession(t)
			target, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")
			if err != nil {
				t.Fatalf("SubmitLoginForm() error = %v", err)
			}
			if target != "wayfarer://auth/callback?code=XYZ&state=S1" {
				t.Errorf("target = %q", target)
			}
		})
	}
}

func TestSubmitLoginForm_MetaRefreshWinsOverScript(t *testing.T) {
	// Both mechanisms present: the meta refresh is authoritative
	page := `<html>
<head><meta http-equiv="refresh" content="0;URL=/meta-target"></head>
<body><script>window.location.href = '/script-target';</script></body>
</html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	target, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")
	if err != nil {
		t.Fatalf("SubmitLoginForm() error = %v", err)
	}
	if target != "/meta-target" {
		t.Errorf("target = %q, want the meta refresh target", target)
	}
}

func TestSubmitLoginForm_ErrorElement(t *testing.T) {
	page := `<html><body>
<div class="alert alert-error">Invalid username or password.</div>
<script>window.location.href = '/should-not-matter';</script>
</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	_, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")

	var loginErr *LoginFailedError
	if !errors.As(err, &loginErr) {
		t.Fatalf("error = %v, want *LoginFailedError", err)
	}
	if !strings.Contains(loginErr.Reason, "Invalid username or password.") {
		t.Errorf("Reason = %q, want the server's message", loginErr.Reason)
	}
}

func TestSubmitLoginForm_ErrorElementByID(t *testing.T) {
	page := `<html><body><span id="login-error">Account locked</span></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	_, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")

	var loginErr *LoginFailedError
	if !errors.As(err, &loginErr) {
		t.Fatalf("error = %v, want *LoginFailedError", err)
	}
	if !strings.Contains(loginErr.Reason, "Account locked") {
		t.Errorf("Reason = %q", loginErr.Reason)
	}
}

func TestSubmitLoginForm_EmptyErrorPlaceholderIgnored(t *testing.T) {
	// Templates leave empty error containers in the page; only rendered
	// text counts as a failure
	page := `<html><body>
<div class="error-message"></div>
<meta http-equiv="refresh" content="0;URL=/done?code=XYZ&state=S1">
</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	target, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")
	if err != nil {
		t.Fatalf("SubmitLoginForm() error = %v", err)
	}
	if target != "/done?code=XYZ&state=S1" {
		t.Errorf("target = %q", target)
	}
}

func TestSubmitLoginForm_NoRedirectFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>Welcome back!</p></body></html>`)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	_, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")

	var notFound *RedirectNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *RedirectNotFoundError", err)
	}
}

func TestSubmitLoginForm_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	s := newTestSession(t)
	_, err := s.SubmitLoginForm(t.Context(), loginForm(server.URL, server.URL), "u", "p")

	var unexpected *UnexpectedStatusError
	if !errors.As(err, &unexpected) {
		t.Fatalf("error = %v, want *UnexpectedStatusError", err)
	}
	if unexpected.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", unexpected.StatusCode)
	}
}

func TestParseRefreshContent(t *testing.T) {
	tests := []struct {
		content string
		want    string
		ok      bool
	}{
		{"0;URL=/target", "/target", true},
		{"0;url=/target", "/target", true},
		{`5; URL="/target"`, "/target", true},
		{"0", "", false},
		{"0;URL=", "", false},
		{"just text", "", false},
	}

	for _, tt := range tests {
		got, ok := parseRefreshContent(tt.content)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseRefreshContent(%q) = (%q, %v), want (%q, %v)", tt.content, got, ok, tt.want, tt.ok)
		}
	}
}
