package cli

import (
	"fmt"

	"github.com/tana-dev/tana/internal/ui"
	"github.com/tana-dev/tana/internal/utils/duration"
)

// Prune deletes undone ledger records older than the given period.
// The special value "config" falls back to the configured retention.
func (c *CLI) Prune(period string) error {
	if period == "config" {
		period = c.config.Ledger.Retention
	}

	olderThan, err := duration.Parse(period)
	if err != nil {
		return fmt.Errorf("invalid prune period %q: %w", period, err)
	}

	if !c.option.Yes {
		prompt := fmt.Sprintf("Delete undone ledger records older than %s? Type YES to continue:", period)
		if !ui.ConfirmYes(prompt) {
			fmt.Println("Pruning canceled.")
			return nil
		}
	}

	lg, err := c.openLedger()
	if err != nil {
		return err
	}
	defer lg.Close()

	n, err := lg.PurgeUndone(olderThan)
	if err != nil {
		return err
	}

	fmt.Printf("Purged %d ledger %s older than %s.\n", n, recordNoun(n), period)
	return nil
}

func recordNoun(n int64) string {
	if n == 1 {
		return "record"
	}
	return "records"
}
