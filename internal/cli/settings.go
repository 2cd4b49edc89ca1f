package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/example/creatorvault/internal/wire"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage user preferences",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := wire.SettingsService().GetSettings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("%-20s %s\n", k, settings[k])
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.SettingsService().UpdateSetting(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to update setting: %w", err)
		}
		fmt.Printf("✓ %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

// SettingsCmd returns the settings command tree.
func SettingsCmd() *cobra.Command {
	return settingsCmd
}
