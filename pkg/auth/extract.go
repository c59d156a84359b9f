package auth

import (
	"fmt"
	"net/url"
)

// neutralBase anchors relative redirect targets so their query parameters can
// be read. The host is irrelevant; the target is never fetched.
var neutralBase = &url.URL{Scheme: "https", Host: "callback.invalid"}

// ExtractAuthorizationCode reads the authorization code from the post-login
// redirect target. The target may be a relative path or an absolute URL with
// a custom scheme (the app redirect URI); both are handled.
//
// The state parameter must byte-exactly equal expectedState or the attempt
// fails closed with *StateMismatchError. A missing code parameter yields
// *CodeNotFoundError.
func ExtractAuthorizationCode(target, expectedState string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid redirect target %q: %w", target, err)
	}
	if !u.IsAbs() {
		u = neutralBase.ResolveReference(u)
	}

	query := u.Query()

	if query.Get("state") != expectedState {
		return "", &StateMismatchError{}
	}

	code := query.Get("code")
	if code == "" {
		return "", &CodeNotFoundError{Target: target}
	}

	return code, nil
}
