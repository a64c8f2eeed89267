package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tana-dev/tana/internal/fs"
	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/scan"
)

// Archiver moves aged files into the archive tree and records every
// movement in the ledger so the batch can be undone later.
type Archiver struct {
	ledger *ledger.Ledger
	layout *Layout

	minAgeDays   int
	fallbackCopy bool
	now          func() time.Time
}

// Config carries the dependencies of an Archiver. Explicit on purpose:
// there is no ambient default root or ledger.
type Config struct {
	// Ledger records movements. Required.
	Ledger *ledger.Ledger

	// Root is the archive base directory, e.g. ~/Archive.
	Root string

	// MinAgeDays is the minimum age a file must have to be archived.
	MinAgeDays int

	// FallbackCopy enables copy+delete when rename fails, so archive
	// roots on another filesystem still work.
	FallbackCopy bool

	// Clock overrides the time source. Nil means time.Now.
	Clock func() time.Time
}

// New creates an Archiver from cfg.
func New(cfg Config) *Archiver {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Archiver{
		ledger:       cfg.Ledger,
		layout:       NewLayout(cfg.Root, now),
		minAgeDays:   cfg.MinAgeDays,
		fallbackCopy: cfg.FallbackCopy,
		now:          now,
	}
}

// Layout returns the path layout the archiver writes into.
func (a *Archiver) Layout() *Layout {
	return a.layout
}

// MinAgeDays returns the configured age threshold.
func (a *Archiver) MinAgeDays() int {
	return a.minAgeDays
}

// Result aggregates one archive run.
type Result struct {
	// BatchID identifies the run in the ledger. Allocated even when
	// nothing qualified, in which case no row carries it.
	BatchID string

	// MonthDir is the dated folder this run archived into.
	MonthDir string

	Moved      int
	Failed     int
	TotalBytes int64

	// Errors holds one message per failed file.
	Errors []string
}

// Archive filters files by the configured age threshold and moves every
// eligible file into the current month folder, recording each move in
// the ledger. Per-file failures are collected in the result and never
// abort the run; only failing to create the archive root aborts.
func (a *Archiver) Archive(files []scan.File) (*Result, error) {
	batchID := ledger.NewBatchID()

	eligible := scan.FilterOld(files, a.minAgeDays)

	result := &Result{
		BatchID:  batchID,
		MonthDir: a.layout.MonthDir(),
	}

	if err := os.MkdirAll(a.layout.Root(), 0755); err != nil {
		return nil, NewError("archive", a.layout.Root(), err)
	}

	for _, f := range eligible {
		dest, err := a.archiveOne(batchID, f)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, errorText(f.Path, err))
			slog.Warn("archive failed", "path", f.Path, "error", err)
			continue
		}

		result.Moved++
		result.TotalBytes += f.Size
		slog.Debug("archived", "batch_id", batchID, "from", f.Path, "to", dest)
	}

	return result, nil
}

// archiveOne resolves a unique destination, moves the file, and appends
// the movement to the ledger. The move is not rolled back when the
// ledger append fails; the error surfaces so the file is counted as
// failed and the user can reconcile by hand.
func (a *Archiver) archiveOne(batchID string, f scan.File) (string, error) {
	dest, err := a.layout.Resolve(f.Name)
	if err != nil {
		return "", err
	}

	if err := fs.Move(f.Path, dest, a.fallbackCopy); err != nil {
		return "", err
	}

	if _, err := a.ledger.Append(batchID, f.Path, dest, f.Size); err != nil {
		return dest, err
	}

	return dest, nil
}

// errorText renders a per-file failure the way results report them.
func errorText(path string, err error) string {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Sprintf("Permission denied: %s", path)
	}
	return fmt.Sprintf("Error moving %s: %v", path, err)
}
