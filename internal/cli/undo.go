package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/tana-dev/tana/internal/archive"
	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/ui"
)

// Undo restores an archive batch chosen by flag or interactively.
func (c *CLI) Undo() error {
	slog.Debug("cli.undo started")
	defer slog.Debug("cli.undo finished")

	lg, err := c.openLedger()
	if err != nil {
		return err
	}
	defer lg.Close()

	archiver := c.newArchiver(lg)

	switch {
	case c.option.Ledger.Batch != "":
		return c.undoBatch(archiver.Undo(c.option.Ledger.Batch))

	case c.option.Ledger.Last:
		return c.undoBatch(archiver.UndoLast())
	}

	batchID, err := ui.PickBatch(lg, c.config)
	if err != nil {
		if errors.Is(err, ledger.ErrNoActiveBatches) {
			return errors.New("no archive operations to undo")
		}
		return fmt.Errorf("batch selection: %w", err)
	}
	if batchID == "" {
		// Picker quit without confirming anything.
		return nil
	}

	return c.undoBatch(archiver.Undo(batchID))
}

func (c *CLI) undoBatch(result *archive.UndoResult, err error) error {
	if err != nil {
		return undoError(err)
	}
	printUndoResult(result)
	return nil
}

// undoError rewrites archive sentinel errors into the messages shown
// on the command line.
func undoError(err error) error {
	var aerr *archive.Error
	switch {
	case archive.IsBatchNotFound(err):
		if errors.As(err, &aerr) && aerr.Path != "" {
			return fmt.Errorf("no movements found for batch %s", aerr.Path)
		}
		return err

	case archive.IsAlreadyUndone(err):
		if errors.As(err, &aerr) && aerr.Path != "" {
			return fmt.Errorf("batch %s has already been undone", aerr.Path)
		}
		return err

	case archive.IsNoBatches(err):
		return errors.New("no archive operations to undo")

	default:
		return err
	}
}

func printUndoResult(result *archive.UndoResult) {
	if len(result.Errors) > 0 {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Println(yellow(result.Message()))
		for _, e := range result.Errors {
			fmt.Printf("  * %s\n", e)
		}
	} else {
		green := color.New(color.FgHiGreen).SprintFunc()
		fmt.Println(green(result.Message()))
	}

	if n := len(result.Cleanup.Removed); n > 0 {
		fmt.Printf("Cleaned up %d empty archive %s\n", n, folderNoun(n))
	}
	for _, e := range result.Cleanup.Errors {
		slog.Warn("archive cleanup failed", "error", e)
	}
}

func folderNoun(n int) string {
	if n == 1 {
		return "folder"
	}
	return "folders"
}
