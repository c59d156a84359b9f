package cmd

import (
	"time"

	"tripctl/internal/cli"
	"tripctl/pkg/auth"

	"github.com/spf13/cobra"
)

// Login-specific flags
var (
	loginUsername string
	loginPassword string
)

// authLoginCmd represents the auth login command
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the Wayfarer web service",
	Long: `Sign in to the Wayfarer web service.

This command walks the service's browser login flow with the given
credentials and caches the resulting token for later commands. No
web browser is opened.

Credentials are resolved from the --username/--password flags, then the
TRIPCTL_USERNAME/TRIPCTL_PASSWORD environment variables or the config
file, and finally interactive prompts.

Examples:
  tripctl auth login                   # Sign in, prompting as needed
  tripctl auth login -u alice          # Sign in as a specific user`,
	RunE: runAuthLogin,
}

func init() {
	// Login-specific flags (only on login subcommand)
	authLoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username (env: TRIPCTL_USERNAME)")
	authLoginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (env: TRIPCTL_PASSWORD)")
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// A valid cached session makes a new sign-in pointless; require an
	// explicit logout to switch accounts.
	probe, err := buildAuthenticator(cfg, "", "")
	if err != nil {
		return err
	}
	if status := probe.Status(); status.Authenticated {
		authPrintln("Already signed in.")
		authPrintln("Run 'tripctl auth logout' first to switch accounts.")
		return nil
	}

	username, password, err := resolveCredentials(cfg, loginUsername, loginPassword)
	if err != nil {
		return err
	}

	authenticator, err := buildAuthenticator(cfg, username, password)
	if err != nil {
		return err
	}

	var token *auth.Token
	err = cli.Progress(flagQuiet, "Signing in to Wayfarer", func() error {
		var loginErr error
		token, loginErr = authenticator.Authenticate(ctx)
		return loginErr
	})
	if err != nil {
		return &cli.AuthFailedError{Endpoint: cfg.Endpoint, Reason: err}
	}

	if token.ExpiresAt.IsZero() {
		cli.PrintSuccess(flagQuiet, "Signed in.")
	} else {
		cli.PrintSuccess(flagQuiet, "Signed in. Session valid until %s.", token.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
