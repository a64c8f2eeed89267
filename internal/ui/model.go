package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/ui/keys"
)

// Model represents the main UI model following the Bubble Tea pattern
type Model struct {
	// Ledger is the source of batches and records
	ledger *ledger.Ledger

	// State management
	state *ViewState

	// Key mappings
	batchKeys  *keys.ListKeyMap
	recordKeys *keys.ListKeyMap
	detailKeys *keys.DetailKeyMap

	// Currently opened batch and record if any
	batch       *BatchItem
	currentItem *RecordItem

	// The batch id confirmed for restore, empty until chosen
	choice string

	// UI components and config
	config   config.UI
	help     help.Model
	batches  list.Model
	records  list.Model
	viewport viewport.Model

	err error
}

// NewModel creates a new UI model backed by the given ledger.
func NewModel(lg *ledger.Ledger, cfg config.Config) Model {
	return Model{
		ledger:     lg,
		state:      NewViewState(),
		batchKeys:  keys.BatchKeys,
		recordKeys: keys.RecordKeys,
		detailKeys: keys.DetailKeys,
		config:     cfg.UI,
		help:       help.New(),
		batches:    newListModel(cfg.UI, keys.BatchKeys),
		records:    newListModel(cfg.UI, keys.RecordKeys),
	}
}

func newListModel(cfg config.UI, km *keys.ListKeyMap) list.Model {
	d := NewListDelegate(cfg, km)
	l := list.New(nil, d, defaultWidth, defaultHeight)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()

	switch cfg.Paginator {
	case "arabic":
		l.Paginator.Type = paginator.Arabic
	default:
		l.Paginator.Type = paginator.Dots
	}

	return l
}
