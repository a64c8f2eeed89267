package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// YesValidationModel extends the base Model with strict YES validation.
// It only accepts "YES" (in uppercase) as a valid confirmation input and
// provides real-time visual feedback on input validity.
type YesValidationModel struct {
	Model
	showValidation bool
	validStyle     lipgloss.Style
	invalidStyle   lipgloss.Style
}

// NewYesValidation creates a new instance of YesValidationModel which
// accepts only the literal text "YES".
func NewYesValidation() YesValidationModel {
	base := New()
	base.Rendering = InputBox
	base.AcceptedDecisionText = "YES"
	base.DeniedDecisionText = "No"

	return YesValidationModel{
		Model:          base,
		showValidation: true,
		validStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		invalidStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
	}
}

// yesValidationRenderer handles the rendering and input processing for the YES validation.
type yesValidationRenderer struct {
	m    *YesValidationModel
	text textinput.Model
}

// isValidYesChar checks if the input character is valid for the current
// input position, enforcing the strict sequence of "YES".
func isValidYesChar(s string, currentValue string) bool {
	switch len(currentValue) {
	case 0:
		return s == "Y"
	case 1:
		return s == "E"
	case 2:
		return s == "S"
	default:
		return false
	}
}

func (y *YesValidationModel) Init() tea.Cmd {
	y.renderer = &yesValidationRenderer{m: y}
	return y.renderer.Init()
}

func (y *YesValidationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return y.renderer.Update(msg)
}

func (y *YesValidationModel) View() string {
	return y.renderer.View()
}

func (i *yesValidationRenderer) Init() tea.Cmd {
	input := textinput.New()
	input.Placeholder = "YES"

	if strings.HasSuffix(i.m.Prompt, " ") {
		input.Prompt = i.m.Prompt
	} else {
		input.Prompt = i.m.Prompt + " "
	}

	input.PromptStyle = i.m.Styles.Prompt
	input.PlaceholderStyle = i.m.Styles.Placeholder
	input.TextStyle = i.m.Styles.Text
	input.CharLimit = 3
	input.Focus()
	i.text = input
	return nil
}

// Update processes Ctrl+C/Esc as a denial, Enter as confirmation when
// the input is exactly "YES", and otherwise only lets Y, E, S through
// in sequence. Backspace is always allowed for corrections.
func (i *yesValidationRenderer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			i.m.SetDecision(Denied)
			i.m.done = true
			return i.m, tea.Quit
		case tea.KeyEnter:
			if i.text.Value() == i.m.AcceptedDecisionText {
				i.m.SetDecision(Accepted)
				i.m.done = true
				return i.m, tea.Quit
			}
		case tea.KeyBackspace:
			i.text, cmd = i.text.Update(msg)
			return i.m, cmd
		default:
			if isValidYesChar(msg.String(), i.text.Value()) {
				i.text, cmd = i.text.Update(msg)
			}
			return i.m, cmd
		}
	}

	return i.m, cmd
}

// View shows the prompt, the current input and a validation indicator,
// a green check for "YES" and a red cross otherwise.
func (i *yesValidationRenderer) View() string {
	var b strings.Builder

	if i.m.PromptPrefix != "" {
		promptPrefixRender := i.m.Styles.PromptPrefix.Inline(true).Render
		b.WriteString(promptPrefixRender(i.m.PromptPrefix))
		if !strings.HasSuffix(i.m.PromptPrefix, " ") {
			b.WriteString(promptPrefixRender(" "))
		}
	}

	if i.m.done {
		if i.m.Prompt != "" {
			promptRender := i.m.Styles.Prompt.Inline(true).Render
			b.WriteString(promptRender(i.m.Prompt))
			b.WriteString(promptRender(" "))
		}
		b.WriteString(i.m.Value())
		b.WriteRune('\n')
		return b.String()
	}

	b.WriteString(i.text.View())

	if i.m.showValidation {
		b.WriteString(" ")
		if i.text.Value() == i.m.AcceptedDecisionText {
			b.WriteString(i.m.validStyle.Render("✓"))
		} else {
			b.WriteString(i.m.invalidStyle.Render("✗"))
		}
	}

	return b.String()
}
