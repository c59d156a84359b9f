package cmd

import (
	"fmt"

	"tripctl/pkg/wayfarer"

	"github.com/spf13/cobra"
)

// Flight command flags
var (
	flightTrip         string
	flightAirline      string
	flightNumber       string
	flightFrom         string
	flightTo           string
	flightDeparture    string
	flightArrival      string
	flightConfirmation string
	flightDeleteYes    bool
)

// flightCmd represents the flight command group
var flightCmd = &cobra.Command{
	Use:   "flight",
	Short: "Manage flight segments on a trip",
	Long: `Manage flight segments on a trip.

All flight commands operate within one trip, selected with --trip.

Examples:
  tripctl flight list --trip abc123
  tripctl flight add --trip abc123 --airline "ANA" --number NH212 \
    --from LHR --to HND --departure 2026-11-02T09:30:00Z --arrival 2026-11-03T06:50:00Z
  tripctl flight update f1 --trip abc123 --departure 2026-11-02T10:15:00Z
  tripctl flight delete f1 --trip abc123`,
}

var flightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List flight segments",
	RunE:  runFlightList,
}

var flightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a flight segment",
	RunE:  runFlightAdd,
}

var flightUpdateCmd = &cobra.Command{
	Use:   "update <flight-id>",
	Short: "Update a flight segment",
	Long: `Update a flight segment.

Only the fields given as flags are sent; everything else stays unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlightUpdate,
}

var flightDeleteCmd = &cobra.Command{
	Use:   "delete <flight-id>",
	Short: "Delete a flight segment",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlightDelete,
}

func init() {
	rootCmd.AddCommand(flightCmd)
	flightCmd.AddCommand(flightListCmd)
	flightCmd.AddCommand(flightAddCmd)
	flightCmd.AddCommand(flightUpdateCmd)
	flightCmd.AddCommand(flightDeleteCmd)

	flightCmd.PersistentFlags().StringVar(&flightTrip, "trip", "", "Trip ID the flight belongs to")
	_ = flightCmd.MarkPersistentFlagRequired("trip")

	for _, c := range []*cobra.Command{flightAddCmd, flightUpdateCmd} {
		c.Flags().StringVar(&flightAirline, "airline", "", "Airline name")
		c.Flags().StringVar(&flightNumber, "number", "", "Flight number, e.g. NH212")
		c.Flags().StringVar(&flightFrom, "from", "", "Departure airport")
		c.Flags().StringVar(&flightTo, "to", "", "Arrival airport")
		c.Flags().StringVar(&flightDeparture, "departure", "", "Departure time (RFC 3339)")
		c.Flags().StringVar(&flightArrival, "arrival", "", "Arrival time (RFC 3339)")
		c.Flags().StringVar(&flightConfirmation, "confirmation", "", "Booking confirmation code")
	}
	for _, name := range []string{"airline", "number", "from", "to", "departure", "arrival"} {
		_ = flightAddCmd.MarkFlagRequired(name)
	}

	flightDeleteCmd.Flags().BoolVarP(&flightDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runFlightList(cmd *cobra.Command, args []string) error {
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

	flights, err := client.ListFlights(cmd.Context(), flightTrip)
	if err != nil {
		return err
	}

	output, err := formatter.FormatFlights(flights)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runFlightAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	created, err := client.AddFlight(cmd.Context(), flightTrip, &wayfarer.Flight{
		Airline:      flightAirline,
		Number:       flightNumber,
		From:         flightFrom,
		To:           flightTo,
		Departure:    flightDeparture,
		Arrival:      flightArrival,
		Confirmation: flightConfirmation,
	})
	if err != nil {
		return err
	}

	authPrint("Added flight %s (%s %s)\n", created.ID, created.Airline, created.Number)
	return nil
}

func runFlightUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	updated, err := client.UpdateFlight(cmd.Context(), flightTrip, args[0], &wayfarer.Flight{
		Airline:      flightAirline,
		Number:       flightNumber,
		From:         flightFrom,
		To:           flightTo,
		Departure:    flightDeparture,
		Arrival:      flightArrival,
		Confirmation: flightConfirmation,
	})
	if err != nil {
		return err
	}

	authPrint("Updated flight %s\n", updated.ID)
	return nil
}

func runFlightDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	if !flightDeleteYes {
		if !confirmDeletion(fmt.Sprintf("flight segment %s", args[0])) {
			return nil
		}
	}

	if err := client.DeleteFlight(cmd.Context(), flightTrip, args[0]); err != nil {
		return err
	}

	authPrint("Deleted flight %s\n", args[0])
	return nil
}
