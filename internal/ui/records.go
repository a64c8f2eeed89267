package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// updateRecordList handles key events on the record list of a batch.
func (m Model) updateRecordList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.records.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.records, cmd = m.records.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.recordKeys.Quit):
		m.state.SetView(QUITTING)
		return m, tea.Quit

	case key.Matches(msg, m.recordKeys.Esc):
		m.state.SetView(BATCH_VIEW)
		return m, nil

	case key.Matches(msg, m.recordKeys.Space):
		if item, ok := m.records.SelectedItem().(*RecordItem); ok {
			return m, showDetailCmd(item)
		}

	case key.Matches(msg, m.recordKeys.Enter):
		if m.batch != nil {
			m.state.SetView(CONFIRM_VIEW)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	return m, cmd
}
