package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// statusStyle is the line above the table.
	statusStyle = lipgloss.NewStyle().Faint(true)
	// errorStyle highlights a failed refresh.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func (m model) View() string {
	var b strings.Builder

	status := "collecting processes..."
	if !m.updated.IsZero() {
		status = fmt.Sprintf("gprocs  %s  every %s  %d shown",
			m.updated.Format("15:04:05"), m.deps.Options.WatchInterval, max(len(m.lines)-2, 0))
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
