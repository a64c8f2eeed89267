package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// Stats prints ledger-wide totals.
func (c *CLI) Stats() error {
	lg, err := c.openLedger()
	if err != nil {
		return err
	}
	defer lg.Close()

	stats, err := lg.Stats()
	if err != nil {
		return err
	}

	green := color.New(color.FgHiGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("Ledger:"), lg.Path())
	fmt.Printf("%s %d\n", green("Batches:"), stats.TotalBatches)
	fmt.Printf("%s %d\n", green("Records:"), stats.TotalRecords)
	fmt.Printf("%s %d\n", green("Active records:"), stats.ActiveRecords)
	return nil
}
