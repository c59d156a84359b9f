package config

// Config is the top-level configuration structure for tripctl.
type Config struct {
	Endpoint string     `yaml:"endpoint,omitempty"` // Base URL of the trip API (default: https://api.wayfarer.travel)
	Output   string     `yaml:"output,omitempty"`   // Default output format (default: table)
	Debug    bool       `yaml:"debug,omitempty"`    // Enable debug logging
	Auth     AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig carries the login identity used for the interactive sign-in flow.
// Password may be stored here for unattended use, but the environment variable
// TRIPCTL_PASSWORD or the interactive prompt are the recommended sources.
type AuthConfig struct {
	ClientID     string `yaml:"clientId,omitempty"`     // OAuth client identifier (default: tripctl)
	ClientSecret string `yaml:"clientSecret,omitempty"` // Accepted for confidential-client setups; never sent during the code exchange
	Username     string `yaml:"username,omitempty"`     // Account email
	Password     string `yaml:"password,omitempty"`
	CachePath    string `yaml:"cachePath,omitempty"` // Token cache location (default: ~/.config/tripctl/token.json)

	// OAuth endpoint overrides for staging environments. Empty fields keep
	// the production defaults.
	AuthorizeURL string `yaml:"authorizeUrl,omitempty"`
	TokenURL     string `yaml:"tokenUrl,omitempty"`
	LandingURL   string `yaml:"landingUrl,omitempty"`
	RedirectURI  string `yaml:"redirectUri,omitempty"`
	Scope        string `yaml:"scope,omitempty"`
}
