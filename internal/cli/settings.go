package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		s := Coord.Settings()
		fmt.Printf("  theme:          %s\n", s.Theme)
		fmt.Printf("  sortBy:         %s\n", s.SortBy)
		fmt.Printf("  filterCategory: %s\n", s.FilterCategory)
		fmt.Printf("  filterStatus:   %s\n", s.FilterStatus)
		for k, v := range s.Extra {
			fmt.Printf("  %s: %s\n", k, string(v))
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one settings key",
	Long: `Set a single settings key.

Known keys (theme, sortBy, filterCategory, filterStatus) are validated;
unknown keys are stored as-is so settings written by a newer version
survive.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		if err := Coord.UpdateSetting(args[0], args[1]); err != nil {
			return fmt.Errorf("setting %s: %w", args[0], err)
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Switch the presentation theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		if err := Coord.UpdateSetting("theme", args[0]); err != nil {
			return fmt.Errorf("switching theme: %w", err)
		}
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd, themeCmd)
}
