package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tana-dev/tana/internal/fs"
	"github.com/tana-dev/tana/internal/ledger"
)

// UndoResult aggregates one undo run.
type UndoResult struct {
	BatchID  string
	Restored int

	// Errors holds one message per record that could not be restored,
	// including archived files that vanished before the undo ran.
	Errors []string

	// Cleanup reports the empty-folder sweep that follows a restore.
	// Sweep failures never affect the undo outcome.
	Cleanup CleanupReport
}

// Message renders the result the way the CLI reports it.
func (r *UndoResult) Message() string {
	if len(r.Errors) > 0 {
		return fmt.Sprintf("Restored %d files with %d errors", r.Restored, len(r.Errors))
	}
	return fmt.Sprintf("Successfully restored %d files", r.Restored)
}

// CleanupReport describes the empty-folder sweep of the archive root.
type CleanupReport struct {
	Removed []string
	Errors  []string
}

// UndoLast finds the most recent batch that still has at least one
// active record and undoes it.
func (a *Archiver) UndoLast() (*UndoResult, error) {
	last, err := a.ledger.LastActiveBatch()
	if err != nil {
		if errors.Is(err, ledger.ErrNoActiveBatches) {
			return nil, ErrNoBatches
		}
		return nil, NewError("undo", "", err)
	}
	return a.Undo(last.BatchID)
}

// Undo restores every still-active record of the batch to its original
// location, newest first. Archived files that no longer exist are
// reported and skipped. After the pass the whole batch is marked
// undone, even when some files could not be restored, so the same
// batch is never offered for undo twice.
func (a *Archiver) Undo(batchID string) (*UndoResult, error) {
	status, err := a.ledger.BatchStatus(batchID)
	if err != nil {
		if errors.Is(err, ledger.ErrBatchNotFound) {
			return nil, NewError("undo", batchID, ErrBatchNotFound)
		}
		return nil, NewError("undo", batchID, err)
	}
	if status == ledger.StatusUndone {
		return nil, NewError("undo", batchID, ErrAlreadyUndone)
	}

	records, err := a.ledger.BatchRecords(batchID)
	if err != nil {
		return nil, NewError("undo", batchID, err)
	}

	result := &UndoResult{BatchID: batchID}

	for _, r := range records {
		if r.Undone {
			// Restored by an earlier, interrupted undo.
			continue
		}

		if _, err := os.Stat(r.DestPath); err != nil {
			if os.IsNotExist(err) {
				result.Errors = append(result.Errors, fmt.Sprintf("File no longer exists: %s", r.DestPath))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Error restoring %s: %v", r.SourcePath, err))
			}
			continue
		}

		if err := a.restoreOne(r); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error restoring %s: %v", r.SourcePath, err))
			slog.Warn("restore failed", "batch_id", batchID, "path", r.SourcePath, "error", err)
			continue
		}

		result.Restored++
		slog.Debug("restored", "batch_id", batchID, "from", r.DestPath, "to", r.SourcePath)

		if err := a.ledger.MarkRecordUndone(r.ID); err != nil {
			slog.Warn("failed to mark record undone", "id", r.ID, "error", err)
		}
	}

	if _, err := a.ledger.MarkBatchUndone(batchID); err != nil {
		return nil, NewError("undo", batchID, err)
	}

	result.Cleanup = a.sweepEmptyDirs()

	return result, nil
}

// restoreOne recreates the original parent directory and moves the
// archived file back. An occupant at the original path is replaced,
// matching rename semantics.
func (a *Archiver) restoreOne(r ledger.Record) error {
	if err := os.MkdirAll(filepath.Dir(r.SourcePath), 0755); err != nil {
		return err
	}
	return fs.Move(r.DestPath, r.SourcePath, a.fallbackCopy)
}

// sweepEmptyDirs removes empty month folders directly under the
// archive root. Best effort: failures are reported, never returned.
func (a *Archiver) sweepEmptyDirs() CleanupReport {
	var report CleanupReport

	entries, err := os.ReadDir(a.layout.Root())
	if err != nil {
		if !os.IsNotExist(err) {
			report.Errors = append(report.Errors, err.Error())
		}
		return report
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(a.layout.Root(), entry.Name())

		empty, err := fs.IsEmptyDir(dir)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		if !empty {
			continue
		}

		if err := os.Remove(dir); err != nil {
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Removed = append(report.Removed, dir)
	}

	return report
}
