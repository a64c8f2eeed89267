package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tana-dev/tana/internal/ledger"
	"github.com/tana-dev/tana/internal/scan"
)

// archiveFixture moves the named files (all old enough) and returns the
// archive result together with their original paths.
func archiveFixture(t *testing.T, a *Archiver, src string, names ...string) (*Result, []string) {
	t.Helper()

	var files []scan.File
	var originals []string
	for i, name := range names {
		path := writeFile(t, src, name, fmt.Sprintf("content-%d", i))
		originals = append(originals, path)
		files = append(files, descriptor(t, path, 60))
	}

	result, err := a.Archive(files)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if result.Moved != len(names) {
		t.Fatalf("Moved = %d, want %d", result.Moved, len(names))
	}
	return result, originals
}

func TestUndoRestoresOriginalPaths(t *testing.T) {
	a, led, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, originals := archiveFixture(t, a, src,
		"report.txt",
		filepath.Join("nested", "deep", "notes.md"),
	)

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	if undo.Restored != 2 {
		t.Errorf("Restored = %d, want 2", undo.Restored)
	}
	if len(undo.Errors) != 0 {
		t.Errorf("Errors = %v, want none", undo.Errors)
	}
	if want := "Successfully restored 2 files"; undo.Message() != want {
		t.Errorf("Message() = %q, want %q", undo.Message(), want)
	}

	for _, path := range originals {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("file not restored to %s: %v", path, err)
		}
	}

	status, err := led.BatchStatus(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if status != ledger.StatusUndone {
		t.Errorf("status = %v, want StatusUndone", status)
	}
}

func TestUndoTwiceFails(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, _ := archiveFixture(t, a, src, "once.txt")

	if _, err := a.Undo(result.BatchID); err != nil {
		t.Fatalf("first Undo() error = %v", err)
	}

	_, err := a.Undo(result.BatchID)
	if !errors.Is(err, ErrAlreadyUndone) {
		t.Errorf("second Undo() error = %v, want ErrAlreadyUndone", err)
	}
}

func TestUndoUnknownBatch(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)

	_, err := a.Undo("deadbeef")
	if !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("Undo() error = %v, want ErrBatchNotFound", err)
	}
}

func TestUndoLastNothingArchived(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)

	_, err := a.UndoLast()
	if !errors.Is(err, ErrNoBatches) {
		t.Errorf("UndoLast() error = %v, want ErrNoBatches", err)
	}
}

func TestUndoLastPicksMostRecentActiveBatch(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	_, firstOriginals := archiveFixture(t, a, src, "first.txt")
	second, secondOriginals := archiveFixture(t, a, src, "second.txt")

	undo, err := a.UndoLast()
	if err != nil {
		t.Fatalf("UndoLast() error = %v", err)
	}
	if undo.BatchID != second.BatchID {
		t.Errorf("UndoLast picked %s, want %s", undo.BatchID, second.BatchID)
	}

	if _, err := os.Stat(secondOriginals[0]); err != nil {
		t.Errorf("second batch not restored: %v", err)
	}
	if _, err := os.Stat(firstOriginals[0]); !os.IsNotExist(err) {
		t.Errorf("first batch should remain archived")
	}

	// A second undoLast now reaches the older batch.
	undo, err = a.UndoLast()
	if err != nil {
		t.Fatalf("UndoLast() error = %v", err)
	}
	if _, err := os.Stat(firstOriginals[0]); err != nil {
		t.Errorf("first batch not restored: %v", err)
	}

	// Nothing active remains.
	if _, err := a.UndoLast(); !errors.Is(err, ErrNoBatches) {
		t.Errorf("UndoLast() error = %v, want ErrNoBatches", err)
	}
}

func TestUndoVanishedFile(t *testing.T) {
	a, led, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, originals := archiveFixture(t, a, src, "keep.txt", "gone.txt")

	// Delete one archived file behind the ledger's back.
	records, err := led.BatchRecords(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	var gone ledger.Record
	for _, r := range records {
		if filepath.Base(r.SourcePath) == "gone.txt" {
			gone = r
		}
	}
	if err := os.Remove(gone.DestPath); err != nil {
		t.Fatal(err)
	}

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	if undo.Restored != 1 {
		t.Errorf("Restored = %d, want 1", undo.Restored)
	}
	if len(undo.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", undo.Errors)
	}
	if want := fmt.Sprintf("File no longer exists: %s", gone.DestPath); undo.Errors[0] != want {
		t.Errorf("error = %q, want %q", undo.Errors[0], want)
	}
	if want := "Restored 1 files with 1 errors"; undo.Message() != want {
		t.Errorf("Message() = %q, want %q", undo.Message(), want)
	}

	// The batch still closes: a vanished file is gone for good.
	status, err := led.BatchStatus(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if status != ledger.StatusUndone {
		t.Errorf("status = %v, want StatusUndone", status)
	}

	for _, path := range originals {
		if filepath.Base(path) == "keep.txt" {
			if _, err := os.Stat(path); err != nil {
				t.Errorf("surviving file not restored: %v", err)
			}
		}
	}
}

func TestUndoSweepsEmptyMonthFolders(t *testing.T) {
	a, _, root := newTestArchiver(t, 30)
	src := t.TempDir()

	result, _ := archiveFixture(t, a, src, "only.txt")

	monthDir := filepath.Join(root, "2025-06")
	if _, err := os.Stat(monthDir); err != nil {
		t.Fatalf("month folder missing after archive: %v", err)
	}

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(monthDir); !os.IsNotExist(err) {
		t.Errorf("empty month folder should be removed after undo")
	}
	if len(undo.Cleanup.Removed) != 1 || undo.Cleanup.Removed[0] != monthDir {
		t.Errorf("Cleanup.Removed = %v, want [%s]", undo.Cleanup.Removed, monthDir)
	}
	if len(undo.Cleanup.Errors) != 0 {
		t.Errorf("Cleanup.Errors = %v, want none", undo.Cleanup.Errors)
	}
}

func TestUndoKeepsNonEmptyMonthFolders(t *testing.T) {
	a, _, root := newTestArchiver(t, 30)
	src := t.TempDir()

	first, _ := archiveFixture(t, a, src, "mine.txt")
	archiveFixture(t, a, src, "other.txt")

	if _, err := a.Undo(first.BatchID); err != nil {
		t.Fatal(err)
	}

	monthDir := filepath.Join(root, "2025-06")
	if _, err := os.Stat(monthDir); err != nil {
		t.Errorf("month folder with remaining files should survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(monthDir, "other.txt")); err != nil {
		t.Errorf("unrelated archived file should survive: %v", err)
	}
}

func TestUndoRecreatesDeletedSourceDir(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, originals := archiveFixture(t, a, src, filepath.Join("project", "readme.md"))

	// The original folder disappears while the file sits in the archive.
	if err := os.RemoveAll(filepath.Join(src, "project")); err != nil {
		t.Fatal(err)
	}

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if undo.Restored != 1 {
		t.Fatalf("Restored = %d, want 1", undo.Restored)
	}
	if _, err := os.Stat(originals[0]); err != nil {
		t.Errorf("file not restored into recreated folder: %v", err)
	}
}

func TestUndoPartialBatchRestoresRemaining(t *testing.T) {
	a, led, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, originals := archiveFixture(t, a, src, "a.txt", "b.txt")

	// Simulate an interrupted undo: one record already flipped, its
	// file already back home.
	records, err := led.BatchRecords(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	done := records[0]
	if err := os.Rename(done.DestPath, done.SourcePath); err != nil {
		t.Fatal(err)
	}
	if err := led.MarkRecordUndone(done.ID); err != nil {
		t.Fatal(err)
	}

	status, err := led.BatchStatus(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if status != ledger.StatusPartial {
		t.Fatalf("status = %v, want StatusPartial", status)
	}

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatalf("Undo() on partial batch error = %v", err)
	}
	if undo.Restored != 1 {
		t.Errorf("Restored = %d, want 1 (only the remaining record)", undo.Restored)
	}

	for _, path := range originals {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("file not restored to %s: %v", path, err)
		}
	}

	status, err = led.BatchStatus(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if status != ledger.StatusUndone {
		t.Errorf("status = %v, want StatusUndone", status)
	}
}

func TestUndoOverwritesOccupant(t *testing.T) {
	a, _, _ := newTestArchiver(t, 30)
	src := t.TempDir()

	result, originals := archiveFixture(t, a, src, "seat.txt")

	// Someone recreates a file at the original path before the undo.
	if err := os.WriteFile(originals[0], []byte("squatter"), 0644); err != nil {
		t.Fatal(err)
	}

	undo, err := a.Undo(result.BatchID)
	if err != nil {
		t.Fatal(err)
	}
	if undo.Restored != 1 {
		t.Fatalf("Restored = %d, want 1", undo.Restored)
	}

	data, err := os.ReadFile(originals[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content-0" {
		t.Errorf("restored content = %q, want original archived content", data)
	}
}
