package ledger

import (
	"database/sql"
	"fmt"
)

const movementsTableDDL = `
CREATE TABLE IF NOT EXISTS movements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id TEXT NOT NULL,
    source_path TEXT NOT NULL,
    dest_path TEXT NOT NULL,
    file_size INTEGER DEFAULT 0,
    timestamp INTEGER NOT NULL,
    undone INTEGER DEFAULT 0
);
`

const batchIndexDDL = `CREATE INDEX IF NOT EXISTS idx_batch_id ON movements(batch_id);`
const timestampIndexDDL = `CREATE INDEX IF NOT EXISTS idx_timestamp ON movements(timestamp);`

func initSchema(db *sql.DB) error {
	ddls := []string{
		movementsTableDDL,
		batchIndexDDL,
		timestampIndexDDL,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to execute DDL: %w", err)
		}
	}
	return nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}
	return nil
}
