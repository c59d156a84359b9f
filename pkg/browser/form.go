package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// MaxRedirectHops caps the redirect chain followed while resolving the login
// form. Exceeding it means the server is looping or its flow changed shape.
const MaxRedirectHops = 5

// FormField is a single input of a login form. Fields keep the order they
// appear in the document so hidden anti-CSRF values round-trip exactly as
// served.
type FormField struct {
	Name  string
	Value string
}

// LoginForm is a snapshot of the username/password form found on a login
// page: its resolved submission URL, the URL of the page that served it, and
// every named input with its default value.
type LoginForm struct {
	// Action is the absolute form submission URL.
	Action string
	// PageURL is the page the form was served on, used for Origin/Referer.
	PageURL string
	// Fields holds every named input in document order.
	Fields []FormField
}

// Set overwrites the value of the named field, appending the field when the
// form did not declare it.
func (f *LoginForm) Set(name, value string) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			f.Fields[i].Value = value
			return
		}
	}
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
}

// Get returns the value of the named field, or "".
func (f *LoginForm) Get(name string) string {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return f.Fields[i].Value
		}
	}
	return ""
}

// Encode renders the fields as an application/x-www-form-urlencoded body,
// preserving document order.
func (f *LoginForm) Encode() string {
	var b strings.Builder
	for i, field := range f.Fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// ResolveLoginForm issues a GET to initialURL and follows HTTP redirects
// manually until a page containing a username/password form is reached. Each
// Location is resolved against the current URL. The chain is bounded by
// MaxRedirectHops; exceeding it returns *TooManyRedirectsError. A terminal
// page without a login form returns *FormNotFoundError.
func (s *Session) ResolveLoginForm(ctx context.Context, initialURL string) (*LoginForm, error) {
	currentURL := initialURL
	hops := 0

	for {
		resp, err := s.Get(ctx, currentURL)
		if err != nil {
			return nil, err
		}

		if location, ok := redirectTarget(resp); ok {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			hops++
			if hops > MaxRedirectHops {
				return nil, &TooManyRedirectsError{Hops: hops}
			}

			next, err := resolveURL(currentURL, location)
			if err != nil {
				return nil, fmt.Errorf("unresolvable redirect %q from %s: %w", location, currentURL, err)
			}
			s.logger.Debug("Following login redirect",
				"hop", hops,
				"from", currentURL,
				"to", next)
			currentURL = next
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read login page %s: %w", currentURL, err)
		}

		form, err := parseLoginForm(body, currentURL)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Resolved login form",
			"page", currentURL,
			"action", form.Action,
			"fields", len(form.Fields))
		return form, nil
	}
}

// redirectTarget reports whether the response is an HTTP redirect and
// returns its Location.
func redirectTarget(resp *http.Response) (string, bool) {
	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		location := resp.Header.Get("Location")
		return location, location != ""
	}
	return "", false
}

// resolveURL resolves a possibly relative reference against a base URL.
func resolveURL(baseURL, ref string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	target, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(target).String(), nil
}

// parseLoginForm finds the form containing both a username and a password
// input and snapshots every named input it carries. The form's action is
// resolved against the page URL, falling back to the page URL itself when no
// action is declared.
func parseLoginForm(body []byte, pageURL string) (*LoginForm, error) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse login page %s: %w", pageURL, err)
	}

	var found *LoginForm
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "form" {
			fields := collectInputs(n)

			hasUser, hasPass := false, false
			for _, f := range fields {
				switch f.Name {
				case "username":
					hasUser = true
				case "password":
					hasPass = true
				}
			}

			if hasUser && hasPass {
				action := attrValue(n, "action")
				resolved := pageURL
				if action != "" {
					if r, err := resolveURL(pageURL, action); err == nil {
						resolved = r
					}
				}
				found = &LoginForm{
					Action:  resolved,
					PageURL: pageURL,
					Fields:  fields,
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == nil {
		return nil, &FormNotFoundError{URL: pageURL}
	}
	return found, nil
}

// collectInputs gathers every named input under a form node in document
// order.
func collectInputs(form *html.Node) []FormField {
	var fields []FormField
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" {
			if name := attrValue(n, "name"); name != "" {
				fields = append(fields, FormField{
					Name:  name,
					Value: attrValue(n, "value"),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(form)
	return fields
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}
