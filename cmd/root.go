package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"tripctl/internal/cli"
	"tripctl/pkg/logging"
	"tripctl/pkg/wayfarer"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These follow common conventions so scripts can tell failure modes apart.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates authentication is required but not available.
	ExitCodeAuthRequired = 2
	// ExitCodeAuthFailed indicates the sign-in flow failed.
	ExitCodeAuthFailed = 3
)

// Global flags shared by all commands.
var (
	flagDebug     bool
	flagQuiet     bool
	flagOutput    string
	flagNoHeaders bool
	flagTemplate  string
	flagEndpoint  string
)

// rootCmd represents the base command for the tripctl application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Manage your Wayfarer trips from the command line",
	Long: `tripctl manages trips, hotels, flights, transports and activities on
your Wayfarer account from the command line.

Wayfarer has no API-only sign-in, so tripctl signs in the way a browser
would: it walks the login form once and caches the resulting token under
~/.config/tripctl/, after which commands run without touching the login
flow until the token expires.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	// This is useful for providing cleaner error output to the user.
	SilenceUsage: true,
	// Errors are printed by Execute after classification, so Cobra must not
	// print them a second time.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file in the working directory may carry TRIPCTL_* variables.
		_ = godotenv.Load()

		level := logging.LevelWarn
		if debugEnabled() {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

func debugEnabled() bool {
	if flagDebug {
		return true
	}
	if v := os.Getenv("TRIPCTL_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			return debug
		}
	}
	return false
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
// This can be used by other commands to access the build version.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tripctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		err = describeError(err)
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(getExitCode(err))
	}
}

// describeError upgrades raw transport failures into connection errors that
// carry remediation hints. A sign-in or API call that died on the network
// should read as a connectivity problem, not as bad credentials or a server
// rejection. Errors that already guide the user pass through unchanged.
func describeError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	endpoint := urlErr.URL
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil && u.Host != "" {
		endpoint = u.Scheme + "://" + u.Host
	}
	return cli.ClassifyConnectionError(err, endpoint)
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var authRequired *cli.AuthRequiredError
	if errors.As(err, &authRequired) {
		return ExitCodeAuthRequired
	}

	var authExpired *cli.AuthExpiredError
	if errors.As(err, &authExpired) {
		return ExitCodeAuthRequired
	}

	var authFailed *cli.AuthFailedError
	if errors.As(err, &authFailed) {
		return ExitCodeAuthFailed
	}

	// A 401 from the API means the token was rejected server-side.
	var apiErr *wayfarer.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		return ExitCodeAuthRequired
	}

	return ExitCodeError
}

// init registers global flags and the subcommands that have no command group
// of their own.
func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output format (table, wide, json, yaml, template)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHeaders, "no-headers", false, "Suppress header row in table output")
	rootCmd.PersistentFlags().StringVar(&flagTemplate, "template", "", "Go template for -o template output")
	rootCmd.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "Trip API endpoint (env: TRIPCTL_ENDPOINT)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
