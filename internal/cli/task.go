package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskdeck/pkg/models"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task with the given title.

The category flag accepts either a category ID or a category name
(case-insensitive). The due date defaults to today.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}

		descFlag, _ := cmd.Flags().GetString("desc")
		categoryFlag, _ := cmd.Flags().GetString("category")
		priorityFlag, _ := cmd.Flags().GetString("priority")
		dueFlag, _ := cmd.Flags().GetString("due")

		due := dueFlag
		if due == "" {
			due = time.Now().Format("2006-01-02")
		}

		task, err := Coord.CreateTask(models.TaskDraft{
			Title:       args[0],
			Description: descFlag,
			Category:    resolveCategoryRef(categoryFlag),
			Priority:    models.Priority(priorityFlag),
			DueDate:     due,
		})
		if err != nil {
			return fmt.Errorf("adding task: %w", err)
		}

		fmt.Printf("Added task %s\n", task.ID)
		fmt.Printf("  Title:    %s\n", task.Title)
		fmt.Printf("  Priority: %s\n", task.Priority)
		fmt.Printf("  Due:      %s\n", task.DueDate)
		if name := categoryName(task.Category); name != "" {
			fmt.Printf("  Category: %s\n", name)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks using the current filters and sort order",
	Long: `Display the filtered, sorted task list.

The --category, --status and --sort flags change the persisted view
settings; --search applies to this invocation only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}

		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			if err := Coord.UpdateSetting("filterCategory", resolveCategoryFilter(v)); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			if err := Coord.UpdateSetting("filterStatus", v); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("sort") {
			v, _ := cmd.Flags().GetString("sort")
			if err := Coord.UpdateSetting("sortBy", v); err != nil {
				return err
			}
		}
		if search, _ := cmd.Flags().GetString("search"); search != "" {
			Coord.SetSearchText(search)
		}

		printTaskList(Coord.View())
		counts := Coord.Counts()
		fmt.Printf("\n%d total, %d pending, %d completed\n", counts.Total, counts.Pending, counts.Completed)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit fields of an existing task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}

		var patch models.TaskPatch
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("desc") {
			v, _ := cmd.Flags().GetString("desc")
			patch.Description = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			ref := resolveCategoryRef(v)
			patch.Category = &ref
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			p := models.Priority(v)
			patch.Priority = &p
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			patch.DueDate = &v
		}

		Coord.BeginEdit(args[0])
		defer Coord.EndEdit()
		task, err := Coord.UpdateTask(args[0], patch)
		if err != nil {
			return fmt.Errorf("editing task: %w", err)
		}
		fmt.Printf("Updated task %s (%s)\n", task.ID, task.Title)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task's completion state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		task, err := Coord.ToggleTask(args[0])
		if err != nil {
			return fmt.Errorf("toggling task: %w", err)
		}
		if task.Completed {
			fmt.Printf("Completed %s (%s)\n", task.ID, task.Title)
		} else {
			fmt.Printf("Reopened %s (%s)\n", task.ID, task.Title)
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		if err := Coord.DeleteTask(args[0]); err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		before := Coord.Counts().Completed
		if err := Coord.ClearCompleted(); err != nil {
			return fmt.Errorf("clearing completed tasks: %w", err)
		}
		fmt.Printf("Cleared %d completed task(s)\n", before)
		return nil
	},
}

var (
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	priorityStyle = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
)

// printTaskList prints the derived view as a table.
func printTaskList(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks match the current view.")
		return
	}
	fmt.Printf("  %-2s %-28s %-8s %-12s %-12s %s\n", "", "TITLE", "PRI", "DUE", "CATEGORY", "ID")
	for _, t := range tasks {
		mark := " "
		style := pendingStyle
		if t.Completed {
			mark = "x"
			style = doneStyle
		}
		pri := priorityStyle[t.Priority].Render(string(t.Priority))
		title := t.Title
		if len(title) > 28 {
			title = title[:25] + "..."
		}
		fmt.Printf("  [%s] %-28s %-8s %-12s %-12s %s\n",
			mark, style.Render(title), pri, t.DueDate, categoryName(t.Category), t.ID)
	}
}

// categoryName resolves a category reference for display. Dangling
// references render as the raw ID rather than failing.
func categoryName(id string) string {
	if id == "" || Coord == nil {
		return id
	}
	cat, err := Coord.CategoryByID(id)
	if err != nil {
		return id
	}
	return cat.Name
}

// resolveCategoryRef maps a category name (case-insensitive) to its ID;
// anything that does not match a known name is passed through as-is.
func resolveCategoryRef(ref string) string {
	if ref == "" || Coord == nil {
		return ref
	}
	for _, c := range Coord.Categories() {
		if strings.EqualFold(c.Name, ref) {
			return c.ID
		}
	}
	return ref
}

// resolveCategoryFilter is resolveCategoryRef that also preserves the "all"
// sentinel.
func resolveCategoryFilter(ref string) string {
	if ref == models.FilterCategoryAll {
		return ref
	}
	return resolveCategoryRef(ref)
}

func init() {
	addCmd.Flags().String("desc", "", "task description")
	addCmd.Flags().String("category", "", "category ID or name")
	addCmd.Flags().String("priority", string(models.PriorityMedium), "priority: high, medium or low")
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD, default today)")

	listCmd.Flags().String("search", "", "substring to match against title or description")
	listCmd.Flags().String("category", "", "category filter (ID, name or \"all\")")
	listCmd.Flags().String("status", "", "status filter: all, pending or completed")
	listCmd.Flags().String("sort", "", "sort order: date, priority or alphabetical")

	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("desc", "", "new description")
	editCmd.Flags().String("category", "", "new category ID or name")
	editCmd.Flags().String("priority", "", "new priority")
	editCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")

	rootCmd.AddCommand(addCmd, listCmd, editCmd, doneCmd, rmCmd, clearCmd)
}
