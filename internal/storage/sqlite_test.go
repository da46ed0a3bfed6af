package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "invaders", Score: 100, Stage: 1, Outcome: OutcomeGameOver},
		{GameID: "invaders", Score: 50, Stage: 1, Outcome: OutcomeQuit},
		{GameID: "invaders", Score: 2600, Stage: 3, Outcome: OutcomeComplete},
		{GameID: "other", Score: 500, Stage: 2, Outcome: OutcomeGameOver},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("invaders", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 2600 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Stage != 3 || top[0].Outcome != OutcomeComplete {
		t.Errorf("Stage/outcome not stored: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}
}

func TestStoreTieBreakByStage(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "invaders", Score: 300, Stage: 1, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "invaders", Score: 300, Stage: 2, Outcome: OutcomeGameOver})

	top, err := store.TopRuns("invaders", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Stage != 2 {
		t.Errorf("Equal scores should rank the deeper run first, got stage %d", top[0].Stage)
	}
}

func TestStoreRejectsRunWithoutOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{GameID: "invaders", Score: 1}); err == nil {
		t.Error("Expected an error for a run without outcome")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100, Stage: 1, Outcome: OutcomeGameOver})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "invaders", Score: 100, Stage: 1, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "invaders", Score: 300, Stage: 2, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "invaders", Score: 200, Stage: 1, Outcome: OutcomeQuit})

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "invaders", Score: 100, Stage: 1, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "other", Score: 300, Stage: 1, Outcome: OutcomeGameOver})

	if err := store.ClearRuns("invaders"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.AllRuns("invaders"); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("other"); len(runs) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "invaders", Score: 100, Stage: 1, Outcome: OutcomeGameOver})
	store.SaveRun(Run{GameID: "invaders", Score: 2600, Stage: 3, Outcome: OutcomeComplete})
	store.SaveRun(Run{GameID: "invaders", Score: 700, Stage: 2, Outcome: OutcomeGameOver})

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 2600 || stats.BestStage != 3 || stats.Completed != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 1100 {
		t.Errorf("Expected average 1100, got %v", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
