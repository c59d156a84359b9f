package browser

import (
	"net/http"
	"net/url"
)

// userAgent matches the Firefox release whose TLS fingerprint the optional
// uTLS transport presents. Header set and handshake must tell the same story
// or fingerprint-sensitive servers reject the session.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:132.0) Gecko/20100101 Firefox/132.0"

// browserHeaders is the fixed header set sent on every request of the login
// flow. The service may reject requests lacking them; this is configuration,
// not business logic.
var browserHeaders = map[string]string{
	"User-Agent":                userAgent,
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Accept-Encoding":           "gzip, deflate, br",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "same-origin",
}

// applyBrowserHeaders stamps the browser header set onto a request without
// clobbering headers the caller already set.
func applyBrowserHeaders(h http.Header) {
	for name, value := range browserHeaders {
		if h.Get(name) == "" {
			h.Set(name, value)
		}
	}
}

// originOf reduces a page URL to its scheme://host origin for the Origin
// header. Returns "" for unparseable input.
func originOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
