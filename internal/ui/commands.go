package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/ledger"
)

// recentBatchLimit caps how many batches the picker shows.
const recentBatchLimit = 50

// loadBatchesCmd loads the recent batches that still have something to
// restore.
func loadBatchesCmd(lg *ledger.Ledger) tea.Cmd {
	return func() tea.Msg {
		summaries, err := lg.RecentBatches(recentBatchLimit)
		if err != nil {
			return batchesLoadedMsg{err: err}
		}

		var items []list.Item
		for _, summary := range summaries {
			if summary.Undone {
				continue
			}
			status, err := lg.BatchStatus(summary.BatchID)
			if err != nil {
				slog.Warn("skipping batch", "batch", summary.BatchID, "error", err)
				continue
			}
			items = append(items, NewBatchItem(summary, status))
		}

		slog.Debug("loaded batches", "count", len(items))
		if len(items) == 0 {
			return batchesLoadedMsg{err: ledger.ErrNoActiveBatches}
		}
		return batchesLoadedMsg{batches: items}
	}
}

// loadRecordsCmd loads the still-active records of the given batch.
func loadRecordsCmd(lg *ledger.Ledger, batch *BatchItem, cfg config.UI) tea.Cmd {
	return func() tea.Msg {
		records, err := lg.BatchRecords(batch.BatchID())
		if err != nil {
			return recordsLoadedMsg{err: err}
		}

		var items []list.Item
		for _, record := range records {
			if record.Undone {
				continue
			}
			items = append(items, NewRecordItem(record, cfg))
		}

		slog.Debug("loaded records", "batch", batch.BatchID(), "count", len(items))
		return recordsLoadedMsg{batch: batch, records: items}
	}
}

func showDetailCmd(item *RecordItem) tea.Cmd {
	return func() tea.Msg {
		return showDetailMsg{item: item}
	}
}
