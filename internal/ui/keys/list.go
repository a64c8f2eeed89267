package keys

import "github.com/charmbracelet/bubbles/key"

// ListKeyMap is shared by the batch list and the record list. The two
// globals below differ only in key help, matching what enter does on
// each level.
type ListKeyMap struct {
	Quit  key.Binding
	Enter key.Binding
	Space key.Binding
	Esc   key.Binding
}

func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Enter,
		k.Space,
		k.Esc,
	}
}

func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Enter,
			k.Space,
			k.Esc,
			k.Quit,
		},
	}
}

// BatchKeys drives the top level of the picker.
var BatchKeys = &ListKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open batch"),
	),
	Space: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "open batch"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "reset"),
	),
}

// RecordKeys drives the record list of an opened batch.
var RecordKeys = &ListKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "restore"),
	),
	Space: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "detail"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
}
