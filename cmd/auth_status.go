package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// authStatusCmd represents the auth status command
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show the current authentication status.

This command reports whether a cached token exists, whether it is still
usable and when it expires. The answer comes from the local token cache
alone; the service is never contacted. The command succeeds whether or
not you are signed in.

Examples:
  tripctl auth status                  # Human-readable status
  tripctl auth status -o json         # Status as JSON`,
	RunE: runAuthStatus,
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	authenticator, err := buildAuthenticator(cfg, "", "")
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	output, err := formatter.FormatAuthStatus(authenticator.Status())
	if err != nil {
		return err
	}

	fmt.Print(output)
	return nil
}
