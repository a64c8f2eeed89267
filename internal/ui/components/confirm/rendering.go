package confirm

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type rendering interface {
	tea.Model
}

// inputRenderer renders in one-line as user-based textual input
type inputRenderer struct {
	m    *Model
	text textinput.Model
}

// Init satisfies the tea.Model interface
func (i *inputRenderer) Init() tea.Cmd {
	input := textinput.New()
	if i.m.Placeholder != "" {
		input.Placeholder = i.m.Placeholder
	} else {
		var s strings.Builder
		if i.m.DefaultValue == Accepted {
			s.WriteString(strings.ToUpper(i.m.AcceptedDecisionText))
		} else {
			s.WriteString(i.m.AcceptedDecisionText)
		}

		s.WriteString("/")

		if i.m.DefaultValue == Denied {
			s.WriteString(strings.ToUpper(i.m.DeniedDecisionText))
		} else {
			s.WriteString(i.m.DeniedDecisionText)
		}

		input.Placeholder = s.String()
	}
	if strings.HasSuffix(i.m.Prompt, " ") {
		input.Prompt = i.m.Prompt
	} else {
		input.Prompt = i.m.Prompt + " "
	}
	input.PromptStyle = i.m.Styles.Prompt
	input.PlaceholderStyle = i.m.Styles.Placeholder
	input.TextStyle = i.m.Styles.Text
	input.CharLimit = len(i.m.AcceptedDecisionText)
	if len(i.m.DeniedDecisionText) > input.CharLimit {
		input.CharLimit = len(i.m.DeniedDecisionText)
	}
	input.Focus()
	i.text = input
	return nil
}

// Update satisfies the tea.Model interface
func (i *inputRenderer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var c tea.Cmd
	i.text, c = i.text.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEnter:
			switch k := strings.ToLower(i.text.Value()); {
			case strings.HasPrefix(k, strings.ToLower(i.m.AcceptedDecisionText)):
				i.m.SetDecision(Accepted)
			case strings.HasPrefix(k, strings.ToLower(i.m.DeniedDecisionText)):
				i.m.SetDecision(Denied)
			}
			i.m.done = true
			return i, tea.Quit
		}
	}

	return i, c
}

// View satisfies the tea.Model interface
func (i *inputRenderer) View() string {
	var b strings.Builder
	if i.m.PromptPrefix != "" {
		promptPrefixRender := i.m.Styles.PromptPrefix.Inline(true).Render
		b.WriteString(promptPrefixRender(i.m.PromptPrefix))
		if i.m.Prompt != "" && !strings.HasSuffix(i.m.PromptPrefix, " ") {
			b.WriteString(promptPrefixRender(" "))
		}
	}

	if i.m.done {
		// rather than clearing the program output, we want to show the question + answer just as AlecAivazis/survey did
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

	return b.String()
}

type immediateRenderer struct {
	m    *Model
	text textinput.Model
}

func (i *immediateRenderer) Init() tea.Cmd {
	input := textinput.New()
	if i.m.Placeholder != "" {
		input.Placeholder = i.m.Placeholder
	} else {
		var s strings.Builder
		if i.m.DefaultValue == Accepted {
			s.WriteString(strings.ToUpper(i.m.AcceptedDecisionText))
		} else {
			s.WriteString(i.m.AcceptedDecisionText)
		}
		s.WriteString("/")
		if i.m.DefaultValue == Denied {
			s.WriteString(strings.ToUpper(i.m.DeniedDecisionText))
		} else {
			s.WriteString(i.m.DeniedDecisionText)
		}
		input.Placeholder = s.String()
	}

	if strings.HasSuffix(i.m.Prompt, " ") {
		input.Prompt = i.m.Prompt
	} else {
		input.Prompt = i.m.Prompt + " "
	}

	input.PromptStyle = i.m.Styles.Prompt
	input.PlaceholderStyle = i.m.Styles.Placeholder
	input.TextStyle = i.m.Styles.Text
	input.CharLimit = len(i.m.AcceptedDecisionText)
	if len(i.m.DeniedDecisionText) > input.CharLimit {
		input.CharLimit = len(i.m.DeniedDecisionText)
	}
	input.Focus()
	i.text = input
	return nil
}

func (i *immediateRenderer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	isLetter := func(s string) bool {
		return !strings.ContainsFunc(s, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.Type == tea.KeyEsc:
			i.m.SetDecision(Denied)
			i.m.done = true
			return i.m, tea.Quit
		default:
			if isLetter(msg.String()) {
				switch strings.ToLower(msg.String()) {
				case strings.ToLower(string(i.m.AcceptedDecisionText[0])):
					i.m.SetDecision(Accepted)
					i.m.done = true
					return i.m, tea.Quit
				case strings.ToLower(string(i.m.DeniedDecisionText[0])):
					i.m.SetDecision(Denied)
					i.m.done = true
					return i.m, tea.Quit
				}
			}
		}
	}
	return i.m, nil
}

func (i *immediateRenderer) View() string {
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
	return b.String()
}
