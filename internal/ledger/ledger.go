// Package ledger persists one row per file movement so that any archive
// batch can be reversed later. Rows are only ever flipped to undone,
// never rewritten, and are physically deleted solely by the retention
// purge.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/k0kubun/pp/v3"
	_ "modernc.org/sqlite"
)

var (
	// ErrBatchNotFound is returned when a batch id has no rows.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrNoActiveBatches is returned when every recorded batch has
	// already been undone, or nothing was ever archived.
	ErrNoActiveBatches = errors.New("no active batches")
)

// Record is one logged file movement.
type Record struct {
	ID         int64
	BatchID    string
	SourcePath string
	DestPath   string
	Size       int64
	Timestamp  time.Time
	Undone     bool
}

func (r Record) String() string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(r)
}

// BatchSummary aggregates the rows of one batch.
type BatchSummary struct {
	BatchID  string
	Files    int
	LastMove time.Time
	Undone   bool
}

// Status describes how much of a batch has been undone.
type Status int

const (
	// StatusActive means no row in the batch is undone.
	StatusActive Status = iota
	// StatusPartial means some rows are undone and some are not,
	// typically after an undo that hit per-file errors.
	StatusPartial
	// StatusUndone means every row in the batch is undone.
	StatusUndone
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPartial:
		return "partial"
	case StatusUndone:
		return "undone"
	}
	return "unknown"
}

// Stats summarizes the whole ledger.
type Stats struct {
	TotalRecords  int64
	ActiveRecords int64
	TotalBatches  int64
}

// Ledger is a movement log backed by a single SQLite database.
type Ledger struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for row timestamps and the
// retention cutoff.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewBatchID allocates a short opaque id for one archive operation.
func NewBatchID() string {
	return uuid.NewString()[:8]
}

// Open opens (and if necessary creates) the ledger database at path.
// The special path ":memory:" opens a throwaway in-memory ledger.
func Open(path string, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create ledger dir: %w", err)
		}
	}

	slog.Debug("opening ledger", "path", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	l.db = db
	return l, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// Path returns the database location.
func (l *Ledger) Path() string {
	return l.path
}

// Append logs one completed movement and returns the new row id.
func (l *Ledger) Append(batchID, source, dest string, size int64) (int64, error) {
	res, err := l.db.Exec(`
		INSERT INTO movements (batch_id, source_path, dest_path, file_size, timestamp, undone)
		VALUES (?, ?, ?, ?, ?, 0)
	`, batchID, source, dest, size, l.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to log movement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	slog.Debug("logged movement", "batch", batchID, "source", source, "dest", dest, "id", id)
	return id, nil
}

// BatchRecords returns every row of a batch, newest insertion first.
// An unknown batch id yields an empty slice, not an error.
func (l *Ledger) BatchRecords(batchID string) ([]Record, error) {
	rows, err := l.db.Query(`
		SELECT id, batch_id, source_path, dest_path, file_size, timestamp, undone
		FROM movements
		WHERE batch_id = ?
		ORDER BY id DESC
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch %s: %w", batchID, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var ts int64
		var undone int
		if err := rows.Scan(&r.ID, &r.BatchID, &r.SourcePath, &r.DestPath, &r.Size, &ts, &undone); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0)
		r.Undone = undone != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// BatchStatus derives the undo state of a batch from all of its rows.
// Returns ErrBatchNotFound when the batch has no rows at all.
func (l *Ledger) BatchStatus(batchID string) (Status, error) {
	var total, undone int
	err := l.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(undone), 0)
		FROM movements
		WHERE batch_id = ?
	`, batchID).Scan(&total, &undone)
	if err != nil {
		return StatusActive, fmt.Errorf("failed to query batch status: %w", err)
	}
	switch {
	case total == 0:
		return StatusActive, ErrBatchNotFound
	case undone == 0:
		return StatusActive, nil
	case undone == total:
		return StatusUndone, nil
	default:
		return StatusPartial, nil
	}
}

// LastActiveBatch returns the most recent batch that still has at least
// one row not yet undone.
func (l *Ledger) LastActiveBatch() (BatchSummary, error) {
	var b BatchSummary
	var ts int64
	err := l.db.QueryRow(`
		SELECT batch_id, COUNT(*) AS file_count, MAX(timestamp) AS last_time
		FROM movements
		WHERE undone = 0
		GROUP BY batch_id
		ORDER BY last_time DESC, MAX(id) DESC
		LIMIT 1
	`).Scan(&b.BatchID, &b.Files, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return BatchSummary{}, ErrNoActiveBatches
	}
	if err != nil {
		return BatchSummary{}, fmt.Errorf("failed to query last batch: %w", err)
	}
	b.LastMove = time.Unix(ts, 0)
	return b, nil
}

// MarkBatchUndone flips every row of the batch to undone, including
// rows whose file could not actually be restored. Returns the number of
// rows updated.
func (l *Ledger) MarkBatchUndone(batchID string) (int64, error) {
	res, err := l.db.Exec(`UPDATE movements SET undone = 1 WHERE batch_id = ?`, batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark batch undone: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	slog.Debug("marked batch undone", "batch", batchID, "rows", n)
	return n, nil
}

// MarkRecordUndone flips a single row to undone. The undo engine calls
// this per restored file so an interrupted undo leaves the batch in a
// truthful partial state instead of looking untouched.
func (l *Ledger) MarkRecordUndone(id int64) error {
	if _, err := l.db.Exec(`UPDATE movements SET undone = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to mark record undone: %w", err)
	}
	return nil
}

// RecentBatches returns summaries of the latest batches, newest first.
// A batch counts as undone only when every one of its rows is undone.
func (l *Ledger) RecentBatches(limit int) ([]BatchSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := l.db.Query(`
		SELECT batch_id, COUNT(*) AS file_count, MAX(timestamp) AS last_time, MIN(undone) AS all_undone
		FROM movements
		GROUP BY batch_id
		ORDER BY last_time DESC, MAX(id) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []BatchSummary
	for rows.Next() {
		var b BatchSummary
		var ts int64
		var allUndone int
		if err := rows.Scan(&b.BatchID, &b.Files, &ts, &allUndone); err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		b.LastMove = time.Unix(ts, 0)
		b.Undone = allUndone == 1
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// PurgeUndone deletes rows that are already undone and older than the
// retention window. Active rows are never purged.
func (l *Ledger) PurgeUndone(olderThan time.Duration) (int64, error) {
	cutoff := l.now().Add(-olderThan).Unix()
	res, err := l.db.Exec(`DELETE FROM movements WHERE undone = 1 AND timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge ledger: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	slog.Debug("purged undone movements", "rows", n, "cutoff", cutoff)
	return n, nil
}

// Stats reports ledger-wide totals.
func (l *Ledger) Stats() (Stats, error) {
	var s Stats
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM movements`).Scan(&s.TotalRecords); err != nil {
		return Stats{}, fmt.Errorf("failed to count records: %w", err)
	}
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM movements WHERE undone = 0`).Scan(&s.ActiveRecords); err != nil {
		return Stats{}, fmt.Errorf("failed to count active records: %w", err)
	}
	if err := l.db.QueryRow(`SELECT COUNT(DISTINCT batch_id) FROM movements`).Scan(&s.TotalBatches); err != nil {
		return Stats{}, fmt.Errorf("failed to count batches: %w", err)
	}
	return s, nil
}
