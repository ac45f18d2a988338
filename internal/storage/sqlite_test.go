package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(100, 2, 45); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(50, 1, 20); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(200, 3, 90); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by score descending
	if runs[0].Score != 200 {
		t.Errorf("Expected best score to be 200, got %d", runs[0].Score)
	}
	if runs[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", runs[1].Score)
	}
	if runs[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", runs[2].Score)
	}

	if runs[0].Level != 3 {
		t.Errorf("Expected best run level 3, got %d", runs[0].Level)
	}
	if runs[0].Duration != 90 {
		t.Errorf("Expected best run duration 90, got %d", runs[0].Duration)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun((i+1)*100, 1, 10)
	}

	runs, err := store.TopRuns(3)
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun(100, 1, 10)
	store.SaveRun(300, 2, 60)
	store.SaveRun(200, 2, 40)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(100, 1, 10)
	store.SaveRun(200, 2, 30)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	high, _ := store.HighScore()
	if high != 0 {
		t.Errorf("Expected high score 0 after clear, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty stats
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(100, 2, 30)
	store.SaveRun(300, 4, 120)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("Expected best level 4, got %d", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %f", stats.AvgScore)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
