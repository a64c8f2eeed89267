package cli

import (
	"fmt"
	"time"

	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/ui/table"
)

const recentBatchLimit = 20

// batchRow adapts a ledger batch summary for table printing.
type batchRow struct {
	summary ledger.BatchSummary
}

func (b batchRow) GetLabel() string {
	label := fmt.Sprintf("%s  %d %s", b.summary.BatchID, b.summary.Files, fileNoun(b.summary.Files))
	if b.summary.Undone {
		label += "  (undone)"
	}
	return label
}

func (b batchRow) GetTimestamp() time.Time {
	return b.summary.LastMove
}

// Batches lists the most recent archive batches, newest first.
func (c *CLI) Batches() error {
	lg, err := c.openLedger()
	if err != nil {
		return err
	}
	defer lg.Close()

	summaries, err := lg.RecentBatches(recentBatchLimit)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No archive batches recorded yet.")
		return nil
	}

	rows := make([]batchRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, batchRow{summary: s})
	}

	table.PrintEntries(rows, table.PrintOptions{
		Header:           "Batch",
		ShowRelativeTime: true,
	})
	return nil
}
