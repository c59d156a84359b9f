package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tripctl/pkg/wayfarer"

	"github.com/spf13/cobra"
)

// Trip create/update flags
var (
	tripName        string
	tripDestination string
	tripStart       string
	tripEnd         string
	tripNotes       string
	tripDeleteYes   bool
)

// tripCmd represents the trip command group
var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage trips",
	Long: `Manage trips in your Wayfarer account.

Examples:
  tripctl trip list                    # List all trips
  tripctl trip get abc123              # Show one trip with its bookings
  tripctl trip create --name "Kyoto Autumn" --destination "Kyoto, Japan" \
    --start 2026-11-02 --end 2026-11-10
  tripctl trip update abc123 --name "Kyoto in Fall"
  tripctl trip delete abc123`,
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trips",
	RunE:  runTripList,
}

var tripGetCmd = &cobra.Command{
	Use:   "get <trip-id>",
	Short: "Show a trip with its hotels, flights, transports and activities",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripGet,
}

var tripCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a trip",
	RunE:  runTripCreate,
}

var tripUpdateCmd = &cobra.Command{
	Use:   "update <trip-id>",
	Short: "Update a trip",
	Long: `Update a trip.

Only the fields given as flags are sent; everything else stays unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runTripUpdate,
}

var tripDeleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a trip",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripDelete,
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.AddCommand(tripListCmd)
	tripCmd.AddCommand(tripGetCmd)
	tripCmd.AddCommand(tripCreateCmd)
	tripCmd.AddCommand(tripUpdateCmd)
	tripCmd.AddCommand(tripDeleteCmd)

	for _, c := range []*cobra.Command{tripCreateCmd, tripUpdateCmd} {
		c.Flags().StringVar(&tripName, "name", "", "Trip name")
		c.Flags().StringVar(&tripDestination, "destination", "", "Destination, e.g. \"Kyoto, Japan\"")
		c.Flags().StringVar(&tripStart, "start", "", "Start date (YYYY-MM-DD)")
		c.Flags().StringVar(&tripEnd, "end", "", "End date (YYYY-MM-DD)")
		c.Flags().StringVar(&tripNotes, "notes", "", "Free-form notes")
	}
	_ = tripCreateCmd.MarkFlagRequired("name")
	_ = tripCreateCmd.MarkFlagRequired("destination")
	_ = tripCreateCmd.MarkFlagRequired("start")
	_ = tripCreateCmd.MarkFlagRequired("end")

	tripDeleteCmd.Flags().BoolVarP(&tripDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runTripList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	trips, err := client.ListTrips(cmd.Context())
	if err != nil {
		return err
	}

	output, err := formatter.FormatTrips(trips)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runTripGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	details, err := client.GetTripDetails(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output, err := formatter.FormatTripDetails(details)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runTripCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	created, err := client.CreateTrip(cmd.Context(), &wayfarer.Trip{
		Name:        tripName,
		Destination: tripDestination,
		StartDate:   tripStart,
		EndDate:     tripEnd,
		Notes:       tripNotes,
	})
	if err != nil {
		return err
	}

	authPrint("Created trip %s (%s)\n", created.ID, created.Name)
	return nil
}

func runTripUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	updated, err := client.UpdateTrip(cmd.Context(), args[0], &wayfarer.Trip{
		Name:        tripName,
		Destination: tripDestination,
		StartDate:   tripStart,
		EndDate:     tripEnd,
		Notes:       tripNotes,
	})
	if err != nil {
		return err
	}

	authPrint("Updated trip %s\n", updated.ID)
	return nil
}

func runTripDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	tripID := args[0]
	if !tripDeleteYes {
		if !confirmDeletion(fmt.Sprintf("trip %s and all of its bookings", tripID)) {
			return nil
		}
	}

	if err := client.DeleteTrip(cmd.Context(), tripID); err != nil {
		return err
	}

	authPrint("Deleted trip %s\n", tripID)
	return nil
}

// confirmDeletion asks for interactive confirmation before a destructive
// operation. It returns false, after printing a cancellation notice, when the
// user declines.
func confirmDeletion(what string) bool {
	fmt.Printf("This will delete %s.\n", what)
	fmt.Print("Are you sure? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Cancelled.")
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Cancelled.")
		return false
	}
	return true
}
