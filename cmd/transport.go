package cmd

import (
	"fmt"

	"tripctl/pkg/wayfarer"

	"github.com/spf13/cobra"
)

// Transport command flags
var (
	transportTrip      string
	transportMode      string
	transportFrom      string
	transportTo        string
	transportDeparture string
	transportArrival   string
	transportDeleteYes bool
)

// transportCmd represents the transport command group
var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Manage ground and sea transport on a trip",
	Long: `Manage ground and sea transport on a trip: trains, ferries,
rental cars and transfers.

All transport commands operate within one trip, selected with --trip.

Examples:
  tripctl transport list --trip abc123
  tripctl transport add --trip abc123 --mode train --from "Tokyo" --to "Kyoto" \
    --departure 2026-11-03T09:00:00Z --arrival 2026-11-03T11:15:00Z
  tripctl transport update tr1 --trip abc123 --departure 2026-11-03T09:30:00Z
  tripctl transport delete tr1 --trip abc123`,
}

var transportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transport connections",
	RunE:  runTransportList,
}

var transportAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transport connection",
	RunE:  runTransportAdd,
}

var transportUpdateCmd = &cobra.Command{
	Use:   "update <transport-id>",
	Short: "Update a transport connection",
	Long: `Update a transport connection.

Only the fields given as flags are sent; everything else stays unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransportUpdate,
}

var transportDeleteCmd = &cobra.Command{
	Use:   "delete <transport-id>",
	Short: "Delete a transport connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransportDelete,
}

func init() {
	rootCmd.AddCommand(transportCmd)
	transportCmd.AddCommand(transportListCmd)
	transportCmd.AddCommand(transportAddCmd)
	transportCmd.AddCommand(transportUpdateCmd)
	transportCmd.AddCommand(transportDeleteCmd)

	transportCmd.PersistentFlags().StringVar(&transportTrip, "trip", "", "Trip ID the transport belongs to")
	_ = transportCmd.MarkPersistentFlagRequired("trip")

	for _, c := range []*cobra.Command{transportAddCmd, transportUpdateCmd} {
		c.Flags().StringVar(&transportMode, "mode", "", "Mode of transport, e.g. train, ferry, car")
		c.Flags().StringVar(&transportFrom, "from", "", "Origin")
		c.Flags().StringVar(&transportTo, "to", "", "Destination")
		c.Flags().StringVar(&transportDeparture, "departure", "", "Departure time (RFC 3339)")
		c.Flags().StringVar(&transportArrival, "arrival", "", "Arrival time (RFC 3339)")
	}
	for _, name := range []string{"mode", "from", "to", "departure", "arrival"} {
		_ = transportAddCmd.MarkFlagRequired(name)
	}

	transportDeleteCmd.Flags().BoolVarP(&transportDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runTransportList(cmd *cobra.Command, args []string) error {
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

	transports, err := client.ListTransports(cmd.Context(), transportTrip)
	if err != nil {
		return err
	}

	output, err := formatter.FormatTransports(transports)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runTransportAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	created, err := client.AddTransport(cmd.Context(), transportTrip, &wayfarer.Transport{
		Mode:      transportMode,
		From:      transportFrom,
		To:        transportTo,
		Departure: transportDeparture,
		Arrival:   transportArrival,
	})
	if err != nil {
		return err
	}

	authPrint("Added transport %s (%s from %s to %s)\n", created.ID, created.Mode, created.From, created.To)
	return nil
}

func runTransportUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	updated, err := client.UpdateTransport(cmd.Context(), transportTrip, args[0], &wayfarer.Transport{
		Mode:      transportMode,
		From:      transportFrom,
		To:        transportTo,
		Departure: transportDeparture,
		Arrival:   transportArrival,
	})
	if err != nil {
		return err
	}

	authPrint("Updated transport %s\n", updated.ID)
	return nil
}

func runTransportDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	if !transportDeleteYes {
		if !confirmDeletion(fmt.Sprintf("transport connection %s", args[0])) {
			return nil
		}
	}

	if err := client.DeleteTransport(cmd.Context(), transportTrip, args[0]); err != nil {
		return err
	}

	authPrint("Deleted transport %s\n", args[0])
	return nil
}
