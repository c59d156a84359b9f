// Package config provides configuration management for tripctl.
//
// Configuration is loaded from a single YAML file, layered with environment
// variables and command-line flags:
//
//	flags > environment > config file > built-in defaults
//
// # Configuration File
//
// Default location: ~/.config/tripctl/config.yaml. A missing file is not an
// error; the defaults apply. A malformed file is reported rather than
// silently ignored.
//
//	endpoint: https://api.wayfarer.travel
//	output: table
//	debug: false
//	auth:
//	  clientId: tripctl
//	  username: traveler@example.com
//	  cachePath: /home/traveler/.config/tripctl/token.json
//
// # Environment Variables
//
// TRIPCTL_ENDPOINT, TRIPCTL_CLIENT_ID, TRIPCTL_USERNAME, TRIPCTL_PASSWORD
// and TRIPCTL_DEBUG override the corresponding file values. Passwords are
// better supplied through the environment or the interactive prompt than
// through the file.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("talking to %s\n", cfg.Endpoint)
package config
