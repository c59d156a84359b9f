package cmd

import (
	"fmt"

	"tripctl/pkg/wayfarer"

	"github.com/spf13/cobra"
)

// Activity command flags
var (
	activityTrip      string
	activityTitle     string
	activityLocation  string
	activityStart     string
	activityEnd       string
	activityNotes     string
	activityDeleteYes bool
)

// activityCmd represents the activity command group
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage scheduled activities on a trip",
	Long: `Manage scheduled activities on a trip.

All activity commands operate within one trip, selected with --trip.

Examples:
  tripctl activity list --trip abc123
  tripctl activity add --trip abc123 --title "Fushimi Inari hike" \
    --start 2026-11-04T08:00:00Z
  tripctl activity update a1 --trip abc123 --location "Kyoto"
  tripctl activity delete a1 --trip abc123`,
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	RunE:  runActivityList,
}

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an activity",
	RunE:  runActivityAdd,
}

var activityUpdateCmd = &cobra.Command{
	Use:   "update <activity-id>",
	Short: "Update an activity",
	Long: `Update an activity.

Only the fields given as flags are sent; everything else stays unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runActivityUpdate,
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <activity-id>",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityDelete,
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityUpdateCmd)
	activityCmd.AddCommand(activityDeleteCmd)

	activityCmd.PersistentFlags().StringVar(&activityTrip, "trip", "", "Trip ID the activity belongs to")
	_ = activityCmd.MarkPersistentFlagRequired("trip")

	for _, c := range []*cobra.Command{activityAddCmd, activityUpdateCmd} {
		c.Flags().StringVar(&activityTitle, "title", "", "Activity title")
		c.Flags().StringVar(&activityLocation, "location", "", "Where the activity takes place")
		c.Flags().StringVar(&activityStart, "start", "", "Start time (RFC 3339)")
		c.Flags().StringVar(&activityEnd, "end", "", "End time (RFC 3339)")
		c.Flags().StringVar(&activityNotes, "notes", "", "Free-form notes")
	}
	_ = activityAddCmd.MarkFlagRequired("title")
	_ = activityAddCmd.MarkFlagRequired("start")

	activityDeleteCmd.Flags().BoolVarP(&activityDeleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runActivityList(cmd *cobra.Command, args []string) error {
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

	activities, err := client.ListActivities(cmd.Context(), activityTrip)
	if err != nil {
		return err
	}

	output, err := formatter.FormatActivities(activities)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	created, err := client.AddActivity(cmd.Context(), activityTrip, &wayfarer.Activity{
		Title:    activityTitle,
		Location: activityLocation,
		Start:    activityStart,
		End:      activityEnd,
		Notes:    activityNotes,
	})
	if err != nil {
		return err
	}

	authPrint("Added activity %s (%s)\n", created.ID, created.Title)
	return nil
}

func runActivityUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	updated, err := client.UpdateActivity(cmd.Context(), activityTrip, args[0], &wayfarer.Activity{
		Title:    activityTitle,
		Location: activityLocation,
		Start:    activityStart,
		End:      activityEnd,
		Notes:    activityNotes,
	})
	if err != nil {
		return err
	}

	authPrint("Updated activity %s\n", updated.ID)
	return nil
}

func runActivityDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	if !activityDeleteYes {
		if !confirmDeletion(fmt.Sprintf("activity %s", args[0])) {
			return nil
		}
	}

	if err := client.DeleteActivity(cmd.Context(), activityTrip, args[0]); err != nil {
		return err
	}

	authPrint("Deleted activity %s\n", args[0])
	return nil
}
