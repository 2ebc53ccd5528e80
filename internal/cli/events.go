package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/observability"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events from the event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			fmt.Println("Event log is disabled.")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = EventBudget
		}
		typeFilter, _ := cmd.Flags().GetString("type")

		events, err := EventLog.Read(observability.EventFilter{
			Type:  typeFilter,
			Limit: limit,
		})
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("  %s  %-18s %v\n", e.Time.Format("2006-01-02 15:04:05"), e.Type, e.Data)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().Int("limit", 0, "maximum number of events to show")
	eventsCmd.Flags().String("type", "", "only show events of this type")
	rootCmd.AddCommand(eventsCmd)
}
