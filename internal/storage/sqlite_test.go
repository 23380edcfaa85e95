package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "scores.db")

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
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("snake", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit 3, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d on empty table, expected 0", high)
	}

	for _, score := range []int{3, 42, 7} {
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("snake", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreSeparatesGameIDs(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("snake", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("snake_gui", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 5 {
		t.Errorf("HighScore(snake) = %d, expected 5", high)
	}
}
