package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheDir is the default directory for the token cache file,
// relative to the user's home directory. This follows XDG conventions.
const DefaultCacheDir = ".config/tripctl"

// cacheFileName is the single well-known token cache file. Exactly one cached
// token exists at a time; every successful exchange overwrites it.
const cacheFileName = "token.json"

// storedToken is the on-disk shape of the cached token. ExpiresAt is an epoch
// millisecond timestamp so the file stays readable by other tooling.
type storedToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Scope       string `json:"scope,omitempty"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// FileCache persists a single token to a JSON file.
//
// Load fails open: a missing, unreadable, or malformed cache file is reported
// as a cache miss, never as an error. Save writes through a temp file and
// rename so a partial write cannot corrupt a previously valid token. There is
// no locking; concurrent tripctl invocations racing on the file resolve as
// last-writer-wins, and losing the race only costs the loser a fresh login.
type FileCache struct {
	path string
}

// NewFileCache creates a cache backed by the given file path.
// An empty path falls back to the default location under the home directory.
func NewFileCache(path string) (*FileCache, error) {
	if path == "" {
		var err error
		path, err = DefaultCachePath()
		if err != nil {
			return nil, err
		}
	}
	return &FileCache{path: path}, nil
}

// DefaultCachePath returns the default token cache location,
// ~/.config/tripctl/token.json.
func DefaultCachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultCacheDir, cacheFileName), nil
}

// Path returns the cache file location.
func (c *FileCache) Path() string {
	return c.path
}

// Load reads the cached token. Returns nil on any read or parse error, and
// for files without an access token. Expiry is NOT checked here; callers
// decide whether an expired token is still interesting (the Authenticator
// treats it as a miss, `auth status` displays it).
func (c *FileCache) Load() *Token {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}

	var st storedToken
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Debug("Ignoring unreadable token cache",
			"path", c.path,
			"error", err)
		return nil
	}

	if st.AccessToken == "" {
		return nil
	}

	tok := &Token{
		AccessToken: st.AccessToken,
		TokenType:   st.TokenType,
		ExpiresIn:   st.ExpiresIn,
		Scope:       st.Scope,
	}
	if st.ExpiresAt > 0 {
		tok.ExpiresAt = time.UnixMilli(st.ExpiresAt)
	}
	return tok
}

// Save persists the token, computing ExpiresAt from ExpiresIn (with the
// expiry margin) if it is not already set. The containing directory is
// created on demand with owner-only permissions.
func (c *FileCache) Save(tok *Token) error {
	if tok == nil || tok.AccessToken == "" {
		return fmt.Errorf("refusing to cache empty token")
	}

	tok.SetExpiresAtFromExpiresIn()

	st := storedToken{
		AccessToken: tok.AccessToken,
		ExpiresIn:   tok.ExpiresIn,
		TokenType:   tok.TokenType,
		Scope:       tok.Scope,
	}
	if !tok.ExpiresAt.IsZero() {
		st.ExpiresAt = tok.ExpiresAt.UnixMilli()
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create token cache directory: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write leaves the
	// previous token intact.
	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace token cache: %w", err)
	}

	return nil
}

// Clear removes the cache file. Removing an absent file is not an error.
func (c *FileCache) Clear() error {
	err := os.Remove(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
