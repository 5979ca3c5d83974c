package history

import (
	"path/filepath"
	"testing"
	"time"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/extract"
	"pencilmatch/internal/match"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := Bootstrap(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func testPalette() []extract.ExtractedColor {
	rgb := colour.RGB{R: 237, G: 28, B: 36}
	return []extract.ExtractedColor{
		{RGB: rgb, Hex: rgb.Hex(), Percentage: 100, Brightness: rgb.Brightness()},
	}
}

func testMatches() []match.Match {
	return []match.Match{
		{Brand: "Prismacolor", Name: "True Red", Code: "PC922", PencilRGB: colour.RGB{R: 237, G: 28, B: 36}, TargetRGB: colour.RGB{R: 237, G: 28, B: 36}, Difference: 0, Quality: match.QualityExcellent},
		{Brand: "Derwent", Name: "Crimson Lake", Code: "20", PencilRGB: colour.RGB{R: 220, G: 20, B: 60}, TargetRGB: colour.RGB{R: 237, G: 28, B: 36}, Difference: 7.3, Quality: match.QualityGood},
	}
}

func saveOneAnalysis(t *testing.T, s *Store, sessionID string) int64 {
	t.Helper()
	if err := s.EnsureSession(sessionID); err != nil {
		t.Fatalf("EnsureSession error: %v", err)
	}
	imageID, err := s.SaveUpload(sessionID, Upload{
		Filename: "test.png",
		FileSize: 1234,
		Format:   "png",
		Width:    640,
		Height:   480,
	})
	if err != nil {
		t.Fatalf("SaveUpload error: %v", err)
	}
	analysisID, err := s.SaveAnalysis(imageID, sessionID, 8, testPalette(), 250*time.Millisecond)
	if err != nil {
		t.Fatalf("SaveAnalysis error: %v", err)
	}
	if err := s.SaveMatches(analysisID, sessionID, testMatches()); err != nil {
		t.Fatalf("SaveMatches error: %v", err)
	}
	return analysisID
}

func TestHistoryRoundTrip(t *testing.T) {
	s := testStore(t)
	analysisID := saveOneAnalysis(t, s, "session-1")

	entries, err := s.History("session-1", 10)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.AnalysisID != analysisID {
		t.Errorf("analysis id = %d, want %d", e.AnalysisID, analysisID)
	}
	if e.Filename != "test.png" || e.Width != 640 || e.Height != 480 {
		t.Errorf("upload info = %s %dx%d", e.Filename, e.Width, e.Height)
	}
	if e.NumColors != 8 {
		t.Errorf("num colours = %d, want 8", e.NumColors)
	}
	if len(e.Palette) != 1 || e.Palette[0].Hex != "#ed1c24" {
		t.Errorf("palette = %+v", e.Palette)
	}
	if len(e.Matches) != 2 {
		t.Fatalf("entry has %d matches, want 2", len(e.Matches))
	}
	if e.Matches[0].Code != "PC922" || e.Matches[0].Quality != string(match.QualityExcellent) {
		t.Errorf("first match = %+v", e.Matches[0])
	}
}

func TestHistoryScopedToSession(t *testing.T) {
	s := testStore(t)
	saveOneAnalysis(t, s, "session-1")
	saveOneAnalysis(t, s, "session-2")

	entries, err := s.History("session-1", 10)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("session-1 history has %d entries, want 1", len(entries))
	}

	none, err := s.History("session-3", 10)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown session returned %d entries", len(none))
	}
}

func TestEnsureSessionIsIdempotent(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 3; i++ {
		if err := s.EnsureSession("repeat"); err != nil {
			t.Fatalf("EnsureSession run %d error: %v", i, err)
		}
	}

	stats, err := s.Statistics()
	if err != nil {
		t.Fatalf("Statistics error: %v", err)
	}
	if stats.TotalSessions != 1 {
		t.Errorf("total sessions = %d, want 1", stats.TotalSessions)
	}
}

func TestStatistics(t *testing.T) {
	s := testStore(t)
	saveOneAnalysis(t, s, "session-1")
	saveOneAnalysis(t, s, "session-2")

	stats, err := s.Statistics()
	if err != nil {
		t.Fatalf("Statistics error: %v", err)
	}
	if stats.TotalSessions != 2 || stats.TotalUploads != 2 || stats.TotalAnalyses != 2 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.TotalMatches != 4 {
		t.Errorf("total matches = %d, want 4", stats.TotalMatches)
	}
	if stats.BrandPopularity["Prismacolor"] != 2 || stats.BrandPopularity["Derwent"] != 2 {
		t.Errorf("brand popularity = %v", stats.BrandPopularity)
	}
}

func TestCleanupRemovesStaleSessions(t *testing.T) {
	s := testStore(t)
	saveOneAnalysis(t, s, "stale")
	saveOneAnalysis(t, s, "fresh")

	removed, err := s.Cleanup(time.Hour)
	if err != nil {
		t.Fatalf("Cleanup error: %v", err)
	}
	if removed != 0 {
		t.Errorf("cleanup removed %d fresh sessions", removed)
	}

	// Age one session artificially.
	old := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	if _, err := s.db.Exec("UPDATE user_sessions SET last_activity = ? WHERE session_id = ?", old, "stale"); err != nil {
		t.Fatalf("aging session: %v", err)
	}

	removed, err = s.Cleanup(24 * time.Hour)
	if err != nil {
		t.Fatalf("Cleanup error: %v", err)
	}
	if removed != 1 {
		t.Errorf("cleanup removed %d sessions, want 1", removed)
	}

	stats, err := s.Statistics()
	if err != nil {
		t.Fatalf("Statistics error: %v", err)
	}
	if stats.TotalSessions != 1 || stats.TotalUploads != 1 || stats.TotalAnalyses != 1 || stats.TotalMatches != 2 {
		t.Errorf("post-cleanup totals = %+v", stats)
	}

	if entries, _ := s.History("stale", 10); len(entries) != 0 {
		t.Errorf("stale session still has %d history entries", len(entries))
	}
}
