package config

import "tripctl/pkg/wayfarer"

const (
	// DefaultClientID is the public OAuth client identifier registered for
	// the command-line tool. Public clients carry no secret.
	DefaultClientID = "tripctl"

	// DefaultOutput is the output format used when neither the config file
	// nor the --output flag selects one.
	DefaultOutput = "table"
)

// GetDefaultConfig returns the configuration used when no config file exists.
func GetDefaultConfig() Config {
	return Config{
		Endpoint: wayfarer.DefaultBaseURL,
		Output:   DefaultOutput,
		Auth: AuthConfig{
			ClientID: DefaultClientID,
		},
	}
}
