package observability

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier surfaces one-line user-facing messages.
type Notifier interface {
	Notify(message string)
	Warn(message string)
}

var (
	notifyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// terminalNotifier writes styled one-liners to a writer, typically stderr.
type terminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a Notifier that writes to out.
func NewTerminalNotifier(out io.Writer) Notifier {
	return &terminalNotifier{out: out}
}

func (n *terminalNotifier) Notify(message string) {
	fmt.Fprintln(n.out, notifyStyle.Render(message))
}

func (n *terminalNotifier) Warn(message string) {
	fmt.Fprintln(n.out, warnStyle.Render("warning: "+message))
}
