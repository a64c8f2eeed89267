package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// newTestLedger opens an in-memory ledger whose clock can be advanced
// by the test.
func newTestLedger(t *testing.T) (*Ledger, *time.Time) {
	t.Helper()

	current := testNow
	l, err := Open(":memory:", WithClock(func() time.Time { return current }))
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, &current
}

func mustAppend(t *testing.T, l *Ledger, batchID, source, dest string, size int64) int64 {
	t.Helper()
	id, err := l.Append(batchID, source, dest, size)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return id
}

func TestNewBatchID(t *testing.T) {
	a := NewBatchID()
	b := NewBatchID()

	if len(a) != 8 {
		t.Errorf("batch id %q has length %d, want 8", a, len(a))
	}
	if a == b {
		t.Errorf("two batch ids collided: %q", a)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tana", "ledger.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
	if l.Path() != path {
		t.Errorf("Path() = %q, want %q", l.Path(), path)
	}
}

func TestAppendAndBatchRecords(t *testing.T) {
	l, clock := newTestLedger(t)

	mustAppend(t, l, "batch-01", "/home/u/a.txt", "/archive/2025-06/a.txt", 100)
	*clock = clock.Add(time.Minute)
	mustAppend(t, l, "batch-01", "/home/u/b.txt", "/archive/2025-06/b.txt", 200)
	mustAppend(t, l, "batch-02", "/home/u/c.txt", "/archive/2025-06/c.txt", 300)

	records, err := l.BatchRecords("batch-01")
	if err != nil {
		t.Fatalf("BatchRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest insertion first.
	if records[0].SourcePath != "/home/u/b.txt" {
		t.Errorf("records[0] = %s, want the later insertion", records[0].SourcePath)
	}
	if records[0].Timestamp.Unix() != testNow.Add(time.Minute).Unix() {
		t.Errorf("Timestamp = %v, want clock time", records[0].Timestamp)
	}
	if records[0].Size != 200 {
		t.Errorf("Size = %d, want 200", records[0].Size)
	}
	if records[0].Undone {
		t.Error("fresh record should not be undone")
	}

	// Unknown batch yields an empty slice, not an error.
	records, err = l.BatchRecords("missing")
	if err != nil {
		t.Fatalf("BatchRecords(missing) error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for unknown batch, want 0", len(records))
	}
}

func TestBatchStatus(t *testing.T) {
	l, _ := newTestLedger(t)

	first := mustAppend(t, l, "batch-01", "/a", "/x/a", 1)
	mustAppend(t, l, "batch-01", "/b", "/x/b", 1)

	if _, err := l.BatchStatus("missing"); !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("BatchStatus(missing) error = %v, want ErrBatchNotFound", err)
	}

	status, err := l.BatchStatus("batch-01")
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusActive {
		t.Errorf("status = %v, want StatusActive", status)
	}

	if err := l.MarkRecordUndone(first); err != nil {
		t.Fatal(err)
	}
	status, err = l.BatchStatus("batch-01")
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusPartial {
		t.Errorf("status = %v, want StatusPartial", status)
	}

	if _, err := l.MarkBatchUndone("batch-01"); err != nil {
		t.Fatal(err)
	}
	status, err = l.BatchStatus("batch-01")
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusUndone {
		t.Errorf("status = %v, want StatusUndone", status)
	}
}

func TestStatusString(t *testing.T) {
	testCases := []struct {
		status Status
		want   string
	}{
		{StatusActive, "active"},
		{StatusPartial, "partial"},
		{StatusUndone, "undone"},
		{Status(99), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestLastActiveBatch(t *testing.T) {
	l, clock := newTestLedger(t)

	if _, err := l.LastActiveBatch(); !errors.Is(err, ErrNoActiveBatches) {
		t.Errorf("LastActiveBatch() on empty ledger error = %v, want ErrNoActiveBatches", err)
	}

	mustAppend(t, l, "older", "/a", "/x/a", 1)
	*clock = clock.Add(time.Hour)
	mustAppend(t, l, "newer", "/b", "/x/b", 1)
	mustAppend(t, l, "newer", "/c", "/x/c", 1)

	last, err := l.LastActiveBatch()
	if err != nil {
		t.Fatal(err)
	}
	if last.BatchID != "newer" {
		t.Errorf("BatchID = %q, want %q", last.BatchID, "newer")
	}
	if last.Files != 2 {
		t.Errorf("Files = %d, want 2", last.Files)
	}

	// Once the newest batch is fully undone the older one surfaces.
	if _, err := l.MarkBatchUndone("newer"); err != nil {
		t.Fatal(err)
	}
	last, err = l.LastActiveBatch()
	if err != nil {
		t.Fatal(err)
	}
	if last.BatchID != "older" {
		t.Errorf("BatchID = %q, want %q", last.BatchID, "older")
	}

	if _, err := l.MarkBatchUndone("older"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LastActiveBatch(); !errors.Is(err, ErrNoActiveBatches) {
		t.Errorf("LastActiveBatch() error = %v, want ErrNoActiveBatches", err)
	}
}

func TestLastActiveBatchTieBreak(t *testing.T) {
	l, _ := newTestLedger(t)

	// Same pinned timestamp for both batches: row id decides.
	mustAppend(t, l, "first", "/a", "/x/a", 1)
	mustAppend(t, l, "second", "/b", "/x/b", 1)

	last, err := l.LastActiveBatch()
	if err != nil {
		t.Fatal(err)
	}
	if last.BatchID != "second" {
		t.Errorf("BatchID = %q, want %q", last.BatchID, "second")
	}
}

func TestMarkBatchUndone(t *testing.T) {
	l, _ := newTestLedger(t)

	mustAppend(t, l, "batch-01", "/a", "/x/a", 1)
	mustAppend(t, l, "batch-01", "/b", "/x/b", 1)
	mustAppend(t, l, "batch-02", "/c", "/x/c", 1)

	n, err := l.MarkBatchUndone("batch-01")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("affected rows = %d, want 2", n)
	}

	// The other batch is untouched.
	status, err := l.BatchStatus("batch-02")
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusActive {
		t.Errorf("batch-02 status = %v, want StatusActive", status)
	}
}

func TestRecentBatches(t *testing.T) {
	l, clock := newTestLedger(t)

	mustAppend(t, l, "batch-01", "/a", "/x/a", 1)
	*clock = clock.Add(time.Hour)
	mustAppend(t, l, "batch-02", "/b", "/x/b", 1)
	mustAppend(t, l, "batch-02", "/c", "/x/c", 1)
	*clock = clock.Add(time.Hour)
	mustAppend(t, l, "batch-03", "/d", "/x/d", 1)

	batches, err := l.RecentBatches(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if batches[0].BatchID != "batch-03" || batches[1].BatchID != "batch-02" {
		t.Errorf("order = [%s %s], want newest first", batches[0].BatchID, batches[1].BatchID)
	}
	if batches[1].Files != 2 {
		t.Errorf("batch-02 Files = %d, want 2", batches[1].Files)
	}

	// A batch counts as undone only when every row is undone.
	records, err := l.BatchRecords("batch-02")
	if err != nil {
		t.Fatal(err)
	}
	if err := l.MarkRecordUndone(records[0].ID); err != nil {
		t.Fatal(err)
	}
	batches, err = l.RecentBatches(0) // default limit
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range batches {
		if b.BatchID == "batch-02" && b.Undone {
			t.Error("partially undone batch reported as undone")
		}
	}

	if _, err := l.MarkBatchUndone("batch-02"); err != nil {
		t.Fatal(err)
	}
	batches, err = l.RecentBatches(10)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range batches {
		if b.BatchID == "batch-02" && !b.Undone {
			t.Error("fully undone batch not reported as undone")
		}
	}
}

func TestPurgeUndone(t *testing.T) {
	l, clock := newTestLedger(t)

	mustAppend(t, l, "old-done", "/a", "/x/a", 1)
	mustAppend(t, l, "old-active", "/b", "/x/b", 1)
	if _, err := l.MarkBatchUndone("old-done"); err != nil {
		t.Fatal(err)
	}

	// Ninety days later a fresh undone batch appears.
	*clock = clock.Add(90 * 24 * time.Hour)
	mustAppend(t, l, "new-done", "/c", "/x/c", 1)
	if _, err := l.MarkBatchUndone("new-done"); err != nil {
		t.Fatal(err)
	}

	n, err := l.PurgeUndone(30 * 24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("purged %d rows, want 1", n)
	}

	// The active row survives no matter its age.
	status, err := l.BatchStatus("old-active")
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusActive {
		t.Errorf("old-active status = %v, want StatusActive", status)
	}

	// The recent undone row is inside the retention window.
	if _, err := l.BatchStatus("new-done"); err != nil {
		t.Errorf("new-done should survive purge: %v", err)
	}
	if _, err := l.BatchStatus("old-done"); !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("old-done should be purged, got %v", err)
	}
}

func TestStats(t *testing.T) {
	l, _ := newTestLedger(t)

	stats, err := l.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRecords != 0 || stats.ActiveRecords != 0 || stats.TotalBatches != 0 {
		t.Errorf("empty ledger stats = %+v, want zeros", stats)
	}

	mustAppend(t, l, "batch-01", "/a", "/x/a", 1)
	mustAppend(t, l, "batch-01", "/b", "/x/b", 1)
	mustAppend(t, l, "batch-02", "/c", "/x/c", 1)
	if _, err := l.MarkBatchUndone("batch-02"); err != nil {
		t.Fatal(err)
	}

	stats, err = l.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", stats.TotalRecords)
	}
	if stats.ActiveRecords != 2 {
		t.Errorf("ActiveRecords = %d, want 2", stats.ActiveRecords)
	}
	if stats.TotalBatches != 2 {
		t.Errorf("TotalBatches = %d, want 2", stats.TotalBatches)
	}
}
