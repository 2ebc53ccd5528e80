package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .taskdeckrc into the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ConfigMgr == nil {
			return fmt.Errorf("config manager not initialized")
		}
		path, err := ConfigMgr.WriteDefault()
		if err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		fmt.Printf("Config ready at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
