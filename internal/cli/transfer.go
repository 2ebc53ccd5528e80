package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all state as a snapshot document",
	Long: `Serialize tasks, categories and settings into a self-describing JSON
snapshot. With no argument the document is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		text, err := Coord.Export()
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		if len(args) == 0 {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(args[0], []byte(text+"\n"), 0o600); err != nil {
			return fmt.Errorf("exporting: writing %s: %w", args[0], err)
		}
		fmt.Printf("Exported snapshot to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore state from a snapshot document",
	Long: `Validate and restore a snapshot exported by taskdeck.

Tasks and categories are overwritten; settings are only replaced when the
snapshot carries them. A document that fails shape validation changes
nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("importing: reading %s: %w", args[0], err)
		}
		if err := Coord.Import(string(data)); err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		counts := Coord.Counts()
		fmt.Printf("Imported %d task(s), %d category(ies)\n", counts.Total, len(Coord.Categories()))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all state and re-seed defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		confirm, _ := cmd.Flags().GetBool("yes")
		if !confirm {
			return fmt.Errorf("reset erases all tasks, categories and settings; re-run with --yes to confirm")
		}
		if err := Coord.ResetAll(); err != nil {
			return fmt.Errorf("resetting: %w", err)
		}
		fmt.Println("All state erased; defaults re-seeded.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "confirm the reset")
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
}
