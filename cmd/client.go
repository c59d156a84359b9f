package cmd

import (
	"fmt"

	"tripctl/internal/cli"
	"tripctl/internal/config"
	"tripctl/internal/formatting"
	"tripctl/pkg/auth"
	"tripctl/pkg/wayfarer"
)

// loadConfig reads the user config, layers the environment on top and applies
// the global command-line flags, which win over both.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg, nil
}

// buildAuthenticator constructs the authenticator for the configured account.
// username and password may be empty; commands that need an interactive
// sign-in resolve them through prompts first.
func buildAuthenticator(cfg config.Config, username, password string) (*auth.Authenticator, error) {
	creds := auth.Credentials{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		Username:     username,
		Password:     password,
	}

	opts := []auth.AuthenticatorOption{
		auth.WithEndpoints(authEndpoints(cfg)),
	}
	if cfg.Auth.CachePath != "" {
		cache, err := auth.NewFileCache(cfg.Auth.CachePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, auth.WithTokenCache(cache))
	}

	return auth.NewAuthenticator(creds, opts...)
}

// authEndpoints layers the configured OAuth endpoint overrides, if any, over
// the production defaults.
func authEndpoints(cfg config.Config) auth.Endpoints {
	endpoints := auth.DefaultEndpoints()
	if v := cfg.Auth.AuthorizeURL; v != "" {
		endpoints.AuthorizeURL = v
	}
	if v := cfg.Auth.TokenURL; v != "" {
		endpoints.TokenURL = v
	}
	if v := cfg.Auth.LandingURL; v != "" {
		endpoints.LandingURL = v
	}
	if v := cfg.Auth.RedirectURI; v != "" {
		endpoints.RedirectURI = v
	}
	if v := cfg.Auth.Scope; v != "" {
		endpoints.Scope = v
	}
	return endpoints
}

// newAPIClient wires config, authenticator and API client together for the
// resource commands. Sign-in happens lazily on the first request: a valid
// cached token is used as is, configured credentials allow a transparent
// re-login, and otherwise the command fails with sign-in guidance.
func newAPIClient(cfg config.Config) (*wayfarer.Client, error) {
	username := cfg.Auth.Username
	password := cfg.Auth.Password

	authenticator, err := buildAuthenticator(cfg, username, password)
	if err != nil {
		return nil, err
	}

	canLogin := username != "" && password != ""
	adapter := cli.NewAuthAdapter(authenticator, cfg.Endpoint, canLogin)

	return wayfarer.NewClient(adapter, wayfarer.WithBaseURL(cfg.Endpoint))
}

// newFormatter builds the output formatter from the --output, --no-headers
// and --template flags, falling back to the configured default format.
func newFormatter(cfg config.Config) (formatting.Formatter, error) {
	name := flagOutput
	if name == "" {
		name = cfg.Output
	}

	format, err := formatting.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if format == formatting.FormatTemplate && flagTemplate == "" {
		return nil, fmt.Errorf("--template is required with --output template")
	}

	return formatting.NewFactory().CreateFormatter(formatting.Options{
		Format:    format,
		NoHeaders: flagNoHeaders,
		Template:  flagTemplate,
	}), nil
}
