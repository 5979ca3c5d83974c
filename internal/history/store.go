package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pencilmatch/internal/extract"
	"pencilmatch/internal/match"
)

// Store records analysis runs keyed by an opaque session id supplied
// by the caller.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened history database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Upload describes an analysed image file.
type Upload struct {
	Filename string
	FileSize int64
	Format   string
	Width    int
	Height   int
	Data     []byte
}

// MatchRecord is a persisted pencil match.
type MatchRecord struct {
	Brand      string  `json:"brand"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Difference float64 `json:"color_difference"`
	Quality    string  `json:"quality"`
}

// Entry is one past analysis with its matches.
type Entry struct {
	AnalysisID   int64
	AnalysisTime time.Time
	Filename     string
	Width        int
	Height       int
	NumColors    int
	Palette      []extract.ExtractedColor
	Matches      []MatchRecord
}

// Stats summarises the whole database.
type Stats struct {
	TotalSessions   int
	TotalUploads    int
	TotalAnalyses   int
	TotalMatches    int
	BrandPopularity map[string]int
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// EnsureSession creates the session row if it does not exist and
// refreshes its last-activity timestamp either way.
func (s *Store) EnsureSession(sessionID string) error {
	ts := now()
	_, err := s.db.Exec(`
		INSERT INTO user_sessions (session_id, created_at, last_activity)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET last_activity = excluded.last_activity`,
		sessionID, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("ensure session %s: %w", sessionID, err)
	}
	return nil
}

// SaveUpload records an analysed image and returns its row id. The
// image blob is optional.
func (s *Store) SaveUpload(sessionID string, up Upload) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO image_uploads (session_id, filename, file_size, image_format, width, height, upload_time, image_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, up.Filename, up.FileSize, up.Format, up.Width, up.Height, now(), up.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("save upload %s: %w", up.Filename, err)
	}
	return res.LastInsertId()
}

// SaveAnalysis records one extraction run against an upload and
// returns the analysis row id. The palette is stored as JSON.
func (s *Store) SaveAnalysis(imageID int64, sessionID string, numColors int, palette []extract.ExtractedColor, processing time.Duration) (int64, error) {
	colorsJSON, err := json.Marshal(palette)
	if err != nil {
		return 0, fmt.Errorf("marshal palette: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO color_analyses (image_id, session_id, num_colors_requested, colors_extracted, analysis_time, processing_time_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`,
		imageID, sessionID, numColors, string(colorsJSON), now(), processing.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("save analysis: %w", err)
	}
	return res.LastInsertId()
}

// SaveMatches records the pencil matches of one analysis.
func (s *Store) SaveMatches(analysisID int64, sessionID string, matches []match.Match) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("start match tx: %w", err)
	}

	ts := now()
	for _, m := range matches {
		targetJSON, err := json.Marshal(m.TargetRGB)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal target rgb: %w", err)
		}
		pencilJSON, err := json.Marshal(m.PencilRGB)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal pencil rgb: %w", err)
		}

		if _, err := tx.Exec(`
			INSERT INTO pencil_matches (analysis_id, session_id, brand, pencil_name, pencil_code, target_rgb, pencil_rgb, color_difference, match_quality, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			analysisID, sessionID, m.Brand, m.Name, m.Code,
			string(targetJSON), string(pencilJSON), m.Difference, string(m.Quality), ts,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("save match %s %s: %w", m.Brand, m.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit matches: %w", err)
	}
	return nil
}

// History returns the session's most recent analyses, newest first.
func (s *Store) History(sessionID string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.analysis_time, a.num_colors_requested, a.colors_extracted, u.filename, u.width, u.height
		FROM color_analyses a
		JOIN image_uploads u ON a.image_id = u.id
		WHERE a.session_id = ?
		ORDER BY a.analysis_time DESC, a.id DESC
		LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var analysisTime, colorsJSON string
		if err := rows.Scan(&e.AnalysisID, &analysisTime, &e.NumColors, &colorsJSON, &e.Filename, &e.Width, &e.Height); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, analysisTime); err == nil {
			e.AnalysisTime = t
		}
		if err := json.Unmarshal([]byte(colorsJSON), &e.Palette); err != nil {
			return nil, fmt.Errorf("unmarshal palette for analysis %d: %w", e.AnalysisID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	for i := range entries {
		matches, err := s.analysisMatches(entries[i].AnalysisID)
		if err != nil {
			return nil, err
		}
		entries[i].Matches = matches
	}
	return entries, nil
}

func (s *Store) analysisMatches(analysisID int64) ([]MatchRecord, error) {
	rows, err := s.db.Query(`
		SELECT brand, pencil_name, pencil_code, color_difference, match_quality
		FROM pencil_matches
		WHERE analysis_id = ?
		ORDER BY id`,
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("query matches for analysis %d: %w", analysisID, err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		if err := rows.Scan(&r.Brand, &r.Name, &r.Code, &r.Difference, &r.Quality); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Statistics returns whole-database counts and per-brand match totals.
func (s *Store) Statistics() (Stats, error) {
	stats := Stats{BrandPopularity: make(map[string]int)}

	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(1) FROM user_sessions", &stats.TotalSessions},
		{"SELECT COUNT(1) FROM image_uploads", &stats.TotalUploads},
		{"SELECT COUNT(1) FROM color_analyses", &stats.TotalAnalyses},
		{"SELECT COUNT(1) FROM pencil_matches", &stats.TotalMatches},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return Stats{}, fmt.Errorf("count query: %w", err)
		}
	}

	rows, err := s.db.Query("SELECT brand, COUNT(1) FROM pencil_matches GROUP BY brand")
	if err != nil {
		return Stats{}, fmt.Errorf("brand popularity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var brand string
		var count int
		if err := rows.Scan(&brand, &count); err != nil {
			return Stats{}, fmt.Errorf("scan brand row: %w", err)
		}
		stats.BrandPopularity[brand] = count
	}
	return stats, rows.Err()
}

// Cleanup deletes sessions idle for longer than maxAge along with all
// their uploads, analyses and matches. It returns the number of
// sessions removed.
func (s *Store) Cleanup(maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("start cleanup tx: %w", err)
	}

	stale := "SELECT session_id FROM user_sessions WHERE last_activity < ?"
	for _, table := range []string{"pencil_matches", "color_analyses", "image_uploads"} {
		if _, err := tx.Exec(
			fmt.Sprintf("DELETE FROM %s WHERE session_id IN (%s)", table, stale), cutoff,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("cleanup %s: %w", table, err)
		}
	}

	res, err := tx.Exec("DELETE FROM user_sessions WHERE last_activity < ?", cutoff)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("cleanup sessions: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("count removed sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cleanup: %w", err)
	}
	return int(removed), nil
}
