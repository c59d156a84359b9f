package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// authCmd represents the auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication for tripctl",
	Long: `Manage authentication for tripctl commands.

The auth command group provides subcommands to sign in to the Wayfarer
web service, inspect the local session and clear cached tokens.

Examples:
  tripctl auth login                   # Sign in with the configured account
  tripctl auth login -u alice          # Sign in as a specific user
  tripctl auth status                  # Show authentication status
  tripctl auth logout                  # Clear the cached token`,
}

// authLogoutCmd represents the auth logout command
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the cached authentication token",
	Long: `Clear the cached authentication token.

This command removes the token cache file, requiring you to sign in
again before the next API request.

Examples:
  tripctl auth logout                  # Clear after confirmation
  tripctl auth logout --yes            # Clear without confirmation`,
	RunE: runAuthLogout,
}

// Logout-specific flags
var logoutYes bool

// authPrint prints output only if the --quiet flag is not set.
// Use this for progress messages and non-essential output.
func authPrint(format string, args ...interface{}) {
	if !flagQuiet {
		fmt.Printf(format, args...)
	}
}

// authPrintln prints a line only if the --quiet flag is not set.
// Use this for progress messages and non-essential output.
func authPrintln(a ...interface{}) {
	if !flagQuiet {
		fmt.Println(a...)
	}
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLogoutCmd.Flags().BoolVarP(&logoutYes, "yes", "y", false, "Skip confirmation prompt")
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	authenticator, err := buildAuthenticator(cfg, "", "")
	if err != nil {
		return err
	}

	status := authenticator.Status()
	if !status.HasToken {
		authPrintln("No cached token to clear.")
		return nil
	}

	if !logoutYes {
		fmt.Printf("This will remove the cached token at %s\n", status.CachePath)
		fmt.Print("Are you sure? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := authenticator.Logout(); err != nil {
		return fmt.Errorf("failed to clear cached token: %w", err)
	}

	authPrintln("Signed out.")
	return nil
}
