package cmd

import (
	"fmt"

	"tripctl/pkg/wayfarer"

	"github.com/spf13/cobra"
)

// Hotel command flags
var (
	hotelTrip         string
	hotelName         string
	hotelAddress      string
	hotelCheckIn      string
	hotelCheckOut     string
	hotelConfirmation string
	hotelDeleteYes    bool
)

// hotelCmd represents the hotel command group
var hotelCmd = &cobra.Command{
	Use:   "hotel",
	Short: "Manage hotel bookings on a trip",
	Long: `Manage hotel bookings on a trip.

All hotel commands operate within one trip, selected with --trip.

Examples:
  tripctl hotel list --trip abc123
  tripctl hotel add --trip abc123 --name "Ryokan Sakura" \
    --check-in 2026-11-02 --check-out 2026-11-06
  tripctl hotel update h1 --trip abc123 --confirmation RS-4411
  tripctl hotel delete h1 --trip abc123`,
}

var hotelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hotel bookings",
	RunE:  runHotelList,
}

var hotelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a hotel booking",
	RunE:  runHotelAdd,
}

var hotelUpdateCmd = &cobra.Command{
	Use:   "update <hotel-id>",
	Short: "Update a hotel booking",
	Long: `Update a hotel booking.

Only the fields given as flags are sent; everything else stays unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runHotelUpdate,
}

var hotelDeleteCmd = &cobra.Command{
	Use:   "delete <hotel-id>",
	Short: "Delete a hotel booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelDelete,
}

func init() {
	rootCmd.AddCommand(hotelCmd)
	hotelCmd.AddCommand(hotelListCmd)
	hotelCmd.AddCommand(hotelAddCmd)
	hotelCmd.AddCommand(hotelUpdateCmd)
	hotelCmd.AddCommand(hotelDeleteCmd)

	hotelCmd.PersistentFlags().StringVar(&hotelTrip, "trip", "", "Trip ID the hotel belongs to")
	_ = hotelCmd.MarkPersistentFlagRequired("trip")

	for _, c := range []*cobra.Command{hotelAddCmd, hotelUpdateCmd} {
		c.Flags().StringVar(&hotelName, "name", "", "Hotel name")
		c.Flags().StringVar(&hotelAddress, "address", "", "Hotel address")
		c.Flags().StringVar(&hotelCheckIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
		c.Flags().StringVar(&hotelCheckOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
		c.Flags().StringVar(&hotelConfirmation, "confirmation", "", "Booking confirmation code")
	}
	_ = hotelAddCmd.MarkFlagRequired("name")
	_ = hotelAddCmd.MarkFlagRequired("check-in")
	_ = hotelAddCmd.MarkFlagRequired("check-out")

	hotelDeleteCmd.Flags().BoolVarP(&hotelDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runHotelList(cmd *cobra.Command, args []string) error {
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

	hotels, err := client.ListHotels(cmd.Context(), hotelTrip)
	if err != nil {
		return err
	}

	output, err := formatter.FormatHotels(hotels)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runHotelAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	created, err := client.AddHotel(cmd.Context(), hotelTrip, &wayfarer.Hotel{
		Name:         hotelName,
		Address:      hotelAddress,
		CheckIn:      hotelCheckIn,
		CheckOut:     hotelCheckOut,
		Confirmation: hotelConfirmation,
	})
	if err != nil {
		return err
	}

	authPrint("Added hotel %s (%s)\n", created.ID, created.Name)
	return nil
}

func runHotelUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	updated, err := client.UpdateHotel(cmd.Context(), hotelTrip, args[0], &wayfarer.Hotel{
		Name:         hotelName,
		Address:      hotelAddress,
		CheckIn:      hotelCheckIn,
		CheckOut:     hotelCheckOut,
		Confirmation: hotelConfirmation,
	})
	if err != nil {
		return err
	}

	authPrint("Updated hotel %s\n", updated.ID)
	return nil
}

func runHotelDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	if !hotelDeleteYes {
		if !confirmDeletion(fmt.Sprintf("hotel booking %s", args[0])) {
			return nil
		}
	}

	if err := client.DeleteHotel(cmd.Context(), hotelTrip, args[0]); err != nil {
		return err
	}

	authPrint("Deleted hotel %s\n", args[0])
	return nil
}
