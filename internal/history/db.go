// Package history persists analysis runs to a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_sessions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL UNIQUE,
	created_at    TEXT NOT NULL,
	last_activity TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS image_uploads (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL,
	filename     TEXT NOT NULL,
	file_size    INTEGER,
	image_format TEXT,
	width        INTEGER,
	height       INTEGER,
	upload_time  TEXT NOT NULL,
	image_data   BLOB
);

CREATE TABLE IF NOT EXISTS color_analyses (
	id                      INTEGER PRIMARY KEY AUTOINCREMENT,
	image_id                INTEGER NOT NULL,
	session_id              TEXT NOT NULL,
	num_colors_requested    INTEGER,
	colors_extracted        TEXT,
	analysis_time           TEXT NOT NULL,
	processing_time_seconds REAL
);

CREATE TABLE IF NOT EXISTS pencil_matches (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	analysis_id      INTEGER NOT NULL,
	session_id       TEXT NOT NULL,
	brand            TEXT,
	pencil_name      TEXT,
	pencil_code      TEXT,
	target_rgb       TEXT,
	pencil_rgb       TEXT,
	color_difference REAL,
	match_quality    TEXT,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_session ON color_analyses(session_id);
CREATE INDEX IF NOT EXISTS idx_matches_analysis ON pencil_matches(analysis_id);
CREATE INDEX IF NOT EXISTS idx_uploads_session  ON image_uploads(session_id);
`

// Bootstrap opens the database at dbPath, creating the file and the
// schema if needed.
func Bootstrap(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	database, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", pragma, err)
		}
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := database.Exec(schema); err != nil {
		database.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return database, nil
}
