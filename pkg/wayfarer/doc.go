// Package wayfarer is a typed client for the Wayfarer trip API.
//
// The client wraps the JSON REST surface under /api/v1: trips and their
// nested collections (hotels, flights, transports, activities). Every call
// obtains a bearer token from the configured TokenProvider first, so callers
// never handle tokens directly; pairing the client with an
// auth.Authenticator gives transparent login-on-demand with token caching.
//
// Requests are retried on transient transport failures. API-level failures
// surface as *APIError carrying the upstream status and body.
package wayfarer
