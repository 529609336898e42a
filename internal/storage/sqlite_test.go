package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("climber", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("climber_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("climber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	classic, err := store.TopScores("climber_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("climber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("climber", 100)
	store.SaveScore("climber", 300)
	store.SaveScore("climber", 200)

	high, err = store.HighScore("climber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{RunID: "a", GameID: "climber", Score: 100, Reason: "fell"})
	store.SaveScore("climber", 200)
	store.SaveScore("climber_classic", 300)

	if err := store.ClearScores("climber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("climber", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("climber", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if classic, _ := store.TopScores("climber_classic", 10); len(classic) != 1 {
		t.Error("Classic scores should not be affected by clearing climber")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	run := Run{
		RunID:      "5f1c9a3e-0000-4000-8000-000000000001",
		GameID:     "climber",
		Seed:       -42,
		Score:      1234,
		Kills:      3,
		Ticks:      5000,
		Reason:     "health",
		ReplayPath: "/tmp/replays/run.jsonl.zst",
		StartedAt:  started,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d", id)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Seed != run.Seed || got.Score != run.Score || got.Kills != run.Kills ||
		got.Ticks != run.Ticks || got.Reason != run.Reason || got.ReplayPath != run.ReplayPath {
		t.Errorf("RunByID() = %+v, want %+v", got, run)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}

	// The score is saved alongside the run.
	if high, _ := store.HighScore("climber"); high != 1234 {
		t.Errorf("HighScore() = %d, want 1234", high)
	}

	// Run IDs are unique.
	if _, err := store.SaveRun(run); err == nil {
		t.Error("duplicate run ID should fail")
	}
	if scores, _ := store.AllScores("climber"); len(scores) != 1 {
		t.Errorf("failed run left %d scores, want 1", len(scores))
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, want nil", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	ids := []string{"r1", "r2", "r3"}
	for i, id := range ids {
		if _, err := store.SaveRun(Run{RunID: id, GameID: "climber", Score: i * 10, Reason: "fell"}); err != nil {
			t.Fatal(err)
		}
	}
	store.SaveRun(Run{RunID: "c1", GameID: "climber_classic", Reason: "fell"})

	runs, err := store.RecentRuns("climber", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].RunID != "r3" || runs[1].RunID != "r2" {
		t.Errorf("RecentRuns() = %+v, want r3, r2", runs)
	}
	if runs[0].ReplayPath != "" {
		t.Errorf("ReplayPath = %q, want empty", runs[0].ReplayPath)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("RecentRuns(all) = %d runs, want 4", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{RunID: "a", GameID: "climber", Score: 100, Kills: 2, Reason: "fell"})
	store.SaveRun(Run{RunID: "b", GameID: "climber", Score: 300, Kills: 7, Reason: "health"})
	store.SaveScore("climber_classic", 50)

	stats, err := store.GetGameStats("climber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.BestKills != 7 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() = %d games, want 2", len(all))
	}
	if all["climber_classic"].HighScore != 50 || all["climber_classic"].BestKills != 0 {
		t.Errorf("classic stats = %+v", all["climber_classic"])
	}
}
