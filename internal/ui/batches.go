package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// updateBatchList handles key events on the batch list.
func (m Model) updateBatchList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.batches.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.batches, cmd = m.batches.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.batchKeys.Quit):
		m.state.SetView(QUITTING)
		return m, tea.Quit

	case key.Matches(msg, m.batchKeys.Enter), key.Matches(msg, m.batchKeys.Space):
		if batch, ok := m.batches.SelectedItem().(*BatchItem); ok {
			return m, loadRecordsCmd(m.ledger, batch, m.config)
		}
	}

	var cmd tea.Cmd
	m.batches, cmd = m.batches.Update(msg)
	return m, cmd
}
