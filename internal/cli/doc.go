// Package cli provides command-line interface utilities for tripctl.
//
// It sits between the cobra commands and the lower layers (auth, API client,
// formatting) and owns the pieces every command shares:
//
//   - Typed errors with actionable guidance: AuthRequiredError,
//     AuthExpiredError and AuthFailedError tell the user which tripctl
//     command fixes the situation, and ConnectionError classifies network
//     failures (TLS, DNS, timeout, refused) so the message names the actual
//     problem instead of a generic "request failed".
//   - Progress indication: Progress wraps a network call with a spinner that
//     is automatically suppressed in quiet mode and when output is piped.
//   - Consistent message formatting for success (✓) and warning (⚠) lines.
//
// The cmd package maps these typed errors to exit codes, so scripts can
// distinguish "sign in first" from "wrong password" from "network down".
package cli
