package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tana-dev/tana/internal/ui/styles"
)

// updateConfirm handles key events on the restore confirmation dialog.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.batch != nil {
			m.choice = m.batch.BatchID()
		}
		return m, tea.Quit

	case "n", "N", "esc", "backspace":
		m.state.SetView(m.state.previous)
		return m, nil

	case "ctrl+c", "q":
		m.state.SetView(QUITTING)
		return m, tea.Quit
	}

	return m, nil
}

// confirmView renders the restore confirmation dialog over the view it
// was opened from.
func (m Model) confirmView() string {
	var baseView string
	switch m.state.previous {
	case DETAIL_VIEW:
		baseView = m.renderDetail()
	default:
		baseView = m.records.View()
	}

	return m.renderDialogOverBase(baseView, m.formatRestoreConfirmation())
}

// formatRestoreConfirmation formats the confirmation dialog content.
func (m Model) formatRestoreConfirmation() string {
	count := len(m.records.Items())
	noun := "files"
	if count == 1 {
		noun = "file"
	}

	contents := []string{
		"Are you sure you want to restore",
		fmt.Sprintf("%d %s from batch '%s'?", count, noun, m.batch.BatchID()),
		"",
		"(y/n)",
	}

	return styles.Dialog(m.config).
		Width(defaultWidth - 4).
		Render(lipgloss.JoinVertical(lipgloss.Center, contents...))
}

// renderDialogOverBase renders the dialog box centered over the base view.
func (m Model) renderDialogOverBase(baseView, dialogContent string) string {
	baseLines := strings.Split(baseView, "\n")
	dialogLines := strings.Split(dialogContent, "\n")

	start := (len(baseLines) - len(dialogLines)) / 2
	if start < 0 {
		start = 0
	}

	for i, line := range dialogLines {
		centered := lipgloss.NewStyle().
			Width(defaultWidth).
			Align(lipgloss.Center).
			Render(line)
		if start+i < len(baseLines) {
			baseLines[start+i] = centered
		} else {
			baseLines = append(baseLines, centered)
		}
	}

	return strings.Join(baseLines, "\n")
}
