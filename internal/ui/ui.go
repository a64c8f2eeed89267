// Package ui implements the interactive batch picker used by undo.
//
// The picker walks batch list, record list, record detail and a final
// confirmation dialog, and hands the confirmed batch id back to the
// caller.
package ui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/ui/keys"
)

const (
	ellipsis = "…"

	defaultWidth  = 66
	defaultHeight = 26
	previewHeight = 15
)

var errCannotPreview = errors.New("cannot preview")

// Init loads the recent batches.
func (m Model) Init() tea.Cmd {
	return loadBatchesCmd(m.ledger)
}

// Update handles all messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state.current {
		case BATCH_VIEW:
			return m.updateBatchList(msg)
		case RECORD_VIEW:
			return m.updateRecordList(msg)
		case DETAIL_VIEW:
			return m.updateDetail(msg)
		case CONFIRM_VIEW:
			return m.updateConfirm(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.batches.SetWidth(msg.Width)
		m.records.SetWidth(msg.Width)
		return m, nil

	case batchesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.batches.SetItems(msg.batches)
		return m, nil

	case recordsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.batch = msg.batch
		m.records.SetItems(msg.records)
		m.records.ResetSelected()
		m.records.ResetFilter()
		m.state.SetView(RECORD_VIEW)
		return m, nil

	case showDetailMsg:
		m.currentItem = msg.item
		m.state.preview.available = true
		m.viewport = m.newViewportModel(msg.item)
		m.state.SetView(DETAIL_VIEW)
		return m, nil
	}

	return m, nil
}

// newViewportModel creates a new viewport model for the file preview.
func (m *Model) newViewportModel(item *RecordItem) viewport.Model {
	viewportModel := viewport.New(defaultWidth, previewHeight-lipgloss.Height(m.previewHeader()))
	viewportModel.KeyMap = keys.PreviewKeys

	if err := item.LoadPreview(); err != nil {
		slog.Warn("preview unavailable", "file", item.Title(), "error", err)
		m.state.preview.available = false
	}

	content, _ := item.Preview()
	viewportModel.SetContent(content)
	return viewportModel
}

// PickBatch runs the interactive picker and returns the batch id the
// user confirmed for restore. It returns an empty id when the user
// quit without choosing.
func PickBatch(lg *ledger.Ledger, cfg config.Config) (string, error) {
	m := NewModel(lg, cfg)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(Model)
	if !ok {
		return "", errors.New("unexpected model type")
	}
	if result.err != nil {
		return "", result.err
	}
	if result.state.current == QUITTING {
		return "", nil
	}
	return result.choice, nil
}
