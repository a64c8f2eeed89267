package ui

import "github.com/charmbracelet/bubbles/list"

// batchesLoadedMsg indicates the batch list has been loaded.
type batchesLoadedMsg struct {
	batches []list.Item
	err     error
}

// recordsLoadedMsg indicates the records of a batch have been loaded.
type recordsLoadedMsg struct {
	batch   *BatchItem
	records []list.Item
	err     error
}

// showDetailMsg represents a request to switch to detail view.
type showDetailMsg struct {
	item *RecordItem
}
