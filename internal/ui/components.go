package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tana-dev/tana/internal/ui/components/confirm"
)

// Confirm asks a yes/no question and returns immediately after a
// single keypress.
func Confirm(prompt string) bool {
	m := confirm.New()
	m.Prompt = prompt
	m.DefaultValue = confirm.Denied
	m.Rendering = confirm.ImmediateInput

	p := tea.NewProgram(&m)
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	return m.Selected().IsAccepted()
}

// ConfirmYes asks a question that must be answered by typing "yes".
func ConfirmYes(prompt string) bool {
	m := confirm.NewYesValidation()
	m.Prompt = prompt

	p, err := tea.NewProgram(&m).Run()
	if err != nil {
		slog.Error("confirmYes failed", "error", err)
		return false
	}

	return p.(*confirm.YesValidationModel).IsAccepted()
}
