package ui

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// View returns the string representation of the current UI state
func (m Model) View() string {
	defer color.Unset()

	if m.err != nil {
		slog.Error("rendering of the view has stopped", "error", m.err)
		return m.err.Error()
	}

	// Once a batch has been confirmed, return empty string to exit
	if m.choice != "" {
		return ""
	}

	switch m.state.current {
	case BATCH_VIEW:
		listView := m.batches.View()
		helpView := lipgloss.NewStyle().
			Margin(1, 2).
			Render(m.help.View(m.batchKeys))
		return listView + "\n" + helpView

	case RECORD_VIEW:
		listView := m.records.View()
		helpView := lipgloss.NewStyle().
			Margin(1, 2).
			Render(m.help.View(m.recordKeys))
		return listView + "\n" + helpView

	case DETAIL_VIEW:
		detailView := m.renderDetail()
		helpView := lipgloss.NewStyle().
			Margin(1, 2).
			Render(m.help.View(m.detailKeys))
		return detailView + "\n" + helpView

	case CONFIRM_VIEW:
		return m.confirmView()

	case QUITTING:
		return ""

	default:
		return ""
	}
}
