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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score, score*4, score/2); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("mini", 500, 128, 80); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted by score descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].VariantID != "classic" {
		t.Errorf("VariantID = %q, want classic", scores[0].VariantID)
	}
	if scores[0].MaxTile != 800 || scores[0].Moves != 100 {
		t.Errorf("MaxTile/Moves = %d/%d, want 800/100", scores[0].MaxTile, scores[0].Moves)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not recorded")
	}

	miniScores, err := store.TopScores("mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(miniScores) != 1 {
		t.Errorf("Expected 1 mini score, got %d", len(miniScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100, 64, 40)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("classic", i*10, 32, 20)
	}

	scores, err := store.AllScores("classic")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreHighScoreAndBestTile(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("classic", 100, 512, 90)
	store.SaveScore("classic", 300, 256, 120)
	store.SaveScore("classic", 200, 128, 75)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	// Best tile and high score can come from different games.
	tile, err := store.BestTile("classic")
	if err != nil {
		t.Fatalf("BestTile() failed: %v", err)
	}
	if tile != 512 {
		t.Errorf("Expected best tile of 512, got %d", tile)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 64, 30)
	store.SaveScore("classic", 200, 128, 60)
	store.SaveScore("mini", 300, 256, 90)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	miniScores, _ := store.TopScores("mini", 10)
	if len(miniScores) != 1 {
		t.Error("Mini scores should not be affected by clearing classic")
	}

	if err := store.ClearAllScores(); err != nil {
		t.Fatalf("ClearAllScores() failed: %v", err)
	}
	miniScores, _ = store.TopScores("mini", 10)
	if len(miniScores) != 0 {
		t.Errorf("Expected 0 mini scores after full clear, got %d", len(miniScores))
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || stats.BestTile != 0 {
		t.Errorf("Empty variant stats = %+v, want zeros", stats)
	}

	store.SaveScore("classic", 100, 64, 50)
	store.SaveScore("classic", 300, 512, 150)

	stats, err = store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestTile != 512 {
		t.Errorf("BestTile = %d, want 512", stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalMoves != 200 {
		t.Errorf("TotalMoves = %d, want 200", stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not recorded")
	}
}

func TestStoreGetAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 64, 50)
	store.SaveScore("mini", 40, 32, 25)
	store.SaveScore("mini", 60, 64, 35)

	stats, err := store.GetAllStats()
	if err != nil {
		t.Fatalf("GetAllStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(stats))
	}
	if stats["mini"].GamesCount != 2 || stats["mini"].HighScore != 60 {
		t.Errorf("mini stats = %+v, want 2 games, high 60", stats["mini"])
	}
	if stats["classic"].GamesCount != 1 {
		t.Errorf("classic stats = %+v, want 1 game", stats["classic"])
	}
}
