package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskdeck/pkg/models"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Long: `Create a new category.

Category names are unique under case-insensitive comparison; creating
"WORK" when "Work" exists is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		colorFlag, _ := cmd.Flags().GetString("color")
		cat, err := Coord.CreateCategory(models.CategoryDraft{
			Name:  args[0],
			Color: colorFlag,
		})
		if err != nil {
			return fmt.Errorf("creating category: %w", err)
		}
		fmt.Printf("Created category %s (%s)\n", cat.Name, cat.ID)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		cats := Coord.Categories()
		if len(cats) == 0 {
			fmt.Println("No categories.")
			return nil
		}
		for _, c := range cats {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
			fmt.Printf("  %s %-14s %s\n", swatch, c.Name, c.ID)
		}
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().String("color", "#6366f1", "hex color used for presentation")
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd)
	rootCmd.AddCommand(categoryCmd)
}
