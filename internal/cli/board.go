package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskdeck/pkg/models"
)

// boardTheme bundles the lipgloss styles for one theme setting.
type boardTheme struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	pending  lipgloss.Style
	done     lipgloss.Style
	footer   lipgloss.Style
	helpText lipgloss.Style
}

func themeFor(theme models.Theme) boardTheme {
	if theme == models.ThemeDark {
		return boardTheme{
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
			cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			done:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true),
			footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			helpText: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		}
	}
	return boardTheme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("153")).Padding(0, 1),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		done:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Strikethrough(true),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		helpText: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

type boardModel struct {
	view      []models.Task
	counts    string
	cursor    int
	searching bool
	search    string
	theme     boardTheme
	err       error
}

func newBoardModel() boardModel {
	m := boardModel{theme: themeFor(Coord.Settings().Theme)}
	m.refresh()
	return m
}

// refresh re-derives the view and counts from the coordinator.
func (m *boardModel) refresh() {
	Coord.SetSearchText(m.search)
	m.view = Coord.View()
	c := Coord.Counts()
	m.counts = fmt.Sprintf("%d total · %d pending · %d completed", c.Total, c.Pending, c.Completed)
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m boardModel) Init() tea.Cmd { return nil }

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "enter", "esc":
			m.searching = false
		case "backspace":
			if runes := []rune(m.search); len(runes) > 0 {
				m.search = string(runes[:len(runes)-1])
			}
		default:
			if len(keyMsg.Runes) > 0 {
				m.search += string(keyMsg.Runes)
			}
		}
		m.refresh()
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(m.view) {
			_, m.err = Coord.ToggleTask(m.view[m.cursor].ID)
			m.refresh()
		}
	case "d":
		if m.cursor < len(m.view) {
			m.err = Coord.DeleteTask(m.view[m.cursor].ID)
			m.refresh()
		}
	case "s":
		m.err = Coord.UpdateSetting("sortBy", string(nextSort(Coord.Settings().SortBy)))
		m.refresh()
	case "f":
		m.err = Coord.UpdateSetting("filterStatus", string(nextStatus(Coord.Settings().FilterStatus)))
		m.refresh()
	case "/":
		m.searching = true
		m.search = ""
		m.refresh()
	case "esc":
		m.search = ""
		m.refresh()
	}
	return m, nil
}

func nextSort(mode models.SortMode) models.SortMode {
	switch mode {
	case models.SortByDate:
		return models.SortByPriority
	case models.SortByPriority:
		return models.SortByAlphabetical
	default:
		return models.SortByDate
	}
}

func nextStatus(status models.StatusFilter) models.StatusFilter {
	switch status {
	case models.StatusAll:
		return models.StatusPending
	case models.StatusPending:
		return models.StatusCompleted
	default:
		return models.StatusAll
	}
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.title.Render(" taskdeck "))
	b.WriteString("\n\n")

	settings := Coord.Settings()
	filterLine := fmt.Sprintf("sort: %s · status: %s", settings.SortBy, settings.FilterStatus)
	if m.searching {
		filterLine += fmt.Sprintf(" · search: %s_", m.search)
	} else if m.search != "" {
		filterLine += fmt.Sprintf(" · search: %s", m.search)
	}
	b.WriteString(m.theme.footer.Render(filterLine))
	b.WriteString("\n\n")

	if len(m.view) == 0 {
		b.WriteString("  No tasks match the current view.\n")
	}
	for i, t := range m.view {
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.cursor.Render("> ")
		}
		mark := "[ ]"
		style := m.theme.pending
		if t.Completed {
			mark = "[x]"
			style = m.theme.done
		}
		line := fmt.Sprintf("%s %-32s %-8s %s", mark, t.Title, t.Priority, t.DueDate)
		b.WriteString(cursor + style.Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.footer.Render(m.counts))
	if m.err != nil {
		b.WriteString("\n" + m.theme.footer.Render(fmt.Sprintf("error: %v", m.err)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.helpText.Render("space: toggle | d: delete | s: sort | f: status filter | /: search | q: quit"))
	b.WriteString("\n")
	return b.String()
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive task board",
	Long: `Open an interactive board over the derived task view.

Toggling, deleting, re-sorting and filtering all go through the same
commands the CLI uses; the board re-derives its view after every change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Coord == nil {
			return fmt.Errorf("coordinator not initialized")
		}
		p := tea.NewProgram(newBoardModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running board: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
