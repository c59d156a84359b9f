// Package logging provides structured logging for tripctl built on Go's
// standard slog package.
//
// All log entries carry a subsystem identifier so output can be filtered by
// area (Auth, Browser, Cache, API, Config). Messages support printf-style
// formatting:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Auth", "Using cached token (expires %s)", expiry)
//	logging.Debug("Browser", "Following redirect %d -> %s", hop, target)
//	logging.Error("Cache", err, "Failed to persist token")
//
// Level filtering happens at the handler, so filtered-out messages cost no
// allocation. The package is safe for concurrent use.
package logging
