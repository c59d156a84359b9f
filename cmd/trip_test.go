package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestTripCommandStructure(t *testing.T) {
	t.Run("trip command exists", func(t *testing.T) {
		if tripCmd == nil {
			t.Fatal("tripCmd should not be nil")
		}
	})

	t.Run("trip has subcommands", func(t *testing.T) {
		expectedSubcommands := []string{"list", "get", "create", "update", "delete"}
		foundCommands := make(map[string]bool)
		for _, cmd := range tripCmd.Commands() {
			foundCommands[cmd.Name()] = true
		}

		for _, expected := range expectedSubcommands {
			if !foundCommands[expected] {
				t.Errorf("expected subcommand %q to be registered", expected)
			}
		}
	})

	t.Run("create requires the core trip fields", func(t *testing.T) {
		for _, name := range []string{"name", "destination", "start", "end"} {
			flag := tripCreateCmd.Flags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected --%s flag on trip create", name)
			}
			if flag.Annotations[cobra.BashCompOneRequiredFlag] == nil {
				t.Errorf("expected --%s to be required on trip create", name)
			}
		}
	})

	t.Run("update does not require any field", func(t *testing.T) {
		for _, name := range []string{"name", "destination", "start", "end", "notes"} {
			flag := tripUpdateCmd.Flags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected --%s flag on trip update", name)
			}
			if flag.Annotations[cobra.BashCompOneRequiredFlag] != nil {
				t.Errorf("expected --%s to be optional on trip update", name)
			}
		}
	})

	t.Run("get, update and delete take exactly one argument", func(t *testing.T) {
		for _, cmd := range []*cobra.Command{tripGetCmd, tripUpdateCmd, tripDeleteCmd} {
			if cmd.Args == nil {
				t.Errorf("expected positional arg validation on %q", cmd.Name())
				continue
			}
			if err := cmd.Args(cmd, []string{}); err == nil {
				t.Errorf("expected %q to reject zero arguments", cmd.Name())
			}
			if err := cmd.Args(cmd, []string{"t1"}); err != nil {
				t.Errorf("expected %q to accept one argument: %v", cmd.Name(), err)
			}
		}
	})
}

func TestItemCommandStructure(t *testing.T) {
	groups := []*cobra.Command{hotelCmd, flightCmd, transportCmd, activityCmd}

	for _, group := range groups {
		t.Run(group.Name()+" group", func(t *testing.T) {
			tripFlag := group.PersistentFlags().Lookup("trip")
			if tripFlag == nil {
				t.Fatalf("expected persistent --trip flag on %q", group.Name())
			}
			if tripFlag.Annotations[cobra.BashCompOneRequiredFlag] == nil {
				t.Errorf("expected --trip to be required on %q", group.Name())
			}

			expectedSubcommands := []string{"list", "add", "update", "delete"}
			foundCommands := make(map[string]bool)
			for _, cmd := range group.Commands() {
				foundCommands[cmd.Name()] = true
			}
			for _, expected := range expectedSubcommands {
				if !foundCommands[expected] {
					t.Errorf("expected subcommand %q under %q", expected, group.Name())
				}
			}
		})
	}
}
