// Package browser emulates a browser session against the Wayfarer login
// pages.
//
// The service has no automation-friendly authorize API: login happens on a
// human-facing HTML form behind a chain of redirects, guarded by session
// cookies, hidden anti-CSRF fields, and header checks. A Session binds one
// cookie jar to every request of a single login attempt, follows redirects
// manually so each hop can be resolved and bounded, parses the login form,
// resubmits it with credentials, and sniffs the post-login redirect out of
// whichever mechanism the server used (Location header, meta-refresh tag, or
// inline script).
//
// Sessions are single-use by design: create one per login attempt and discard
// it, so cookies never leak across attempts.
package browser
