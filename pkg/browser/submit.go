package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// scriptRedirectPattern matches an inline `window.location = "..."` or
// `window.location.href = "..."` assignment with a literal target.
var scriptRedirectPattern = regexp.MustCompile(`window\.location(?:\.href)?\s*=\s*['"]([^'"]+)['"]`)

// redirectStrategy extracts a redirect target from a 200 login response,
// reporting whether it found one.
type redirectStrategy struct {
	name    string
	extract func(doc *html.Node, body []byte) (string, bool)
}

// redirectStrategies are tried in order against a 200 login response. The
// server completes the flow with either a meta refresh tag or an inline
// script assignment, depending on the page variant served.
var redirectStrategies = []redirectStrategy{
	{name: "meta-refresh", extract: metaRefreshTarget},
	{name: "inline-script", extract: scriptRedirectTarget},
}

// SubmitLoginForm fills the credentials into the form and POSTs it to the
// form's action, resubmitting every other field (hidden anti-CSRF values
// included) unchanged. It returns the redirect target carrying the
// authorization code, exactly as the server emitted it.
//
// A 403 or an error message rendered into a 200 page returns
// *LoginFailedError. A 200 page with no recognizable redirect returns
// *RedirectNotFoundError. Any other status returns *UnexpectedStatusError.
func (s *Session) SubmitLoginForm(ctx context.Context, form *LoginForm, username, password string) (string, error) {
	form.Set("username", username)
	form.Set("password", password)

	resp, err := s.PostForm(ctx, form.Action, form.Encode(), form.PageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	s.logger.Debug("Submitted login form",
		"action", form.Action,
		"status", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return "", &LoginFailedError{Reason: "server rejected the credentials (HTTP 403)"}

	case http.StatusFound, http.StatusSeeOther:
		location := resp.Header.Get("Location")
		if location == "" {
			return "", &RedirectNotFoundError{}
		}
		s.logger.Debug("Login redirect found", "strategy", "location-header")
		return location, nil

	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read login response: %w", err)
		}
		return sniffRedirect(s, body)

	default:
		io.Copy(io.Discard, resp.Body)
		return "", &UnexpectedStatusError{StatusCode: resp.StatusCode}
	}
}

// sniffRedirect inspects a 200 login response body. A rendered error element
// means the credentials were rejected; otherwise each redirect strategy is
// tried in order.
func sniffRedirect(s *Session, body []byte) (string, error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}

	if msg, ok := errorMessage(doc); ok {
		return "", &LoginFailedError{Reason: msg}
	}

	for _, strategy := range redirectStrategies {
		if target, ok := strategy.extract(doc, body); ok {
			s.logger.Debug("Login redirect found", "strategy", strategy.name)
			return target, nil
		}
	}
	return "", &RedirectNotFoundError{}
}

// errorMessage finds a rendered error element (class or id containing
// "error") with non-empty text. Empty placeholders that templates leave in
// the page do not count.
func errorMessage(doc *html.Node) (string, bool) {
	var msg string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if msg != "" {
			return
		}
		if n.Type == html.ElementNode && isErrorElement(n) {
			if text := nodeText(n); text != "" {
				msg = text
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return msg, msg != ""
}

// isErrorElement reports whether the node's class or id attribute contains
// "error".
func isErrorElement(n *html.Node) bool {
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if key != "class" && key != "id" {
			continue
		}
		if strings.Contains(strings.ToLower(a.Val), "error") {
			return true
		}
	}
	return false
}

// nodeText returns the node's text content with whitespace collapsed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// metaRefreshTarget extracts the URL from a `<meta http-equiv="refresh">`
// tag. The content attribute has the shape `<delay>;URL=<target>`, with the
// URL= prefix case-insensitive and the target optionally quoted.
func metaRefreshTarget(doc *html.Node, _ []byte) (string, bool) {
	var target string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if target != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "meta" {
			if strings.EqualFold(attrValue(n, "http-equiv"), "refresh") {
				if t, ok := parseRefreshContent(attrValue(n, "content")); ok {
					target = t
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return target, target != ""
}

// parseRefreshContent pulls the URL out of a refresh content attribute.
// Browsers tolerate whitespace around the = and quotes around the target;
// so does this.
func parseRefreshContent(content string) (string, bool) {
	for _, part := range strings.Split(content, ";") {
		part = strings.TrimSpace(part)
		if len(part) < 3 || !strings.EqualFold(part[:3], "url") {
			continue
		}
		rest := strings.TrimSpace(part[3:])
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		target := strings.Trim(strings.TrimSpace(rest[1:]), `'"`)
		if target != "" {
			return target, true
		}
	}
	return "", false
}

// scriptRedirectTarget extracts the target of an inline window.location
// assignment.
func scriptRedirectTarget(_ *html.Node, body []byte) (string, bool) {
	m := scriptRedirectPattern.FindSubmatch(body)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}
