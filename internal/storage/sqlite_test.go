package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("cryptogram", "John 3:16", 90); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("cryptogram")
	if err != nil || high != 90 {
		t.Errorf("HighScore() after reopen = %d, %v; want 90", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, ref string
		score     int
	}{
		{"cryptogram", "John 3:16", 100},
		{"cryptogram", "Psalm 23:1", 50},
		{"cryptogram", "John 3:16", 75},
		{"firstletter", "Jude 24", 80},
	} {
		if _, err := store.SaveScore(s.game, s.ref, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("cryptogram", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	var got []int
	for _, e := range scores {
		got = append(got, e.Score)
	}
	if diff := cmp.Diff([]int{100, 75, 50}, got); diff != "" {
		t.Errorf("TopScores order mismatch (-want +got):\n%s", diff)
	}
	if scores[0].Reference != "John 3:16" || scores[0].GameID != "cryptogram" {
		t.Errorf("unexpected top entry %+v", scores[0])
	}

	limited, err := store.TopScores("cryptogram", 2)
	if err != nil || len(limited) != 2 {
		t.Errorf("TopScores(limit 2) returned %d entries, %v", len(limited), err)
	}

	other, err := store.TopScores("firstletter", 0)
	if err != nil || len(other) != 1 || other[0].Score != 80 {
		t.Errorf("firstletter scores = %+v, %v", other, err)
	}

	all, err := store.AllScores("cryptogram")
	if err != nil || len(all) != 3 {
		t.Errorf("AllScores() returned %d entries, %v", len(all), err)
	}
}

func TestStoreVerseQueries(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("unscramble", "John 3:16", 60)  //nolint:errcheck
	store.SaveScore("unscramble", "John 3:16", 90)  //nolint:errcheck
	store.SaveScore("unscramble", "Psalm 23:1", 40) //nolint:errcheck
	store.SaveScore("unscramble", "Jude 24", 90)    //nolint:errcheck

	best, err := store.BestVerses("unscramble")
	if err != nil {
		t.Fatalf("BestVerses() failed: %v", err)
	}
	want := []VerseBest{
		{Reference: "John 3:16", Best: 90, Plays: 2},
		{Reference: "Jude 24", Best: 90, Plays: 1},
		{Reference: "Psalm 23:1", Best: 40, Plays: 1},
	}
	if diff := cmp.Diff(want, best); diff != "" {
		t.Errorf("BestVerses mismatch (-want +got):\n%s", diff)
	}

	history, err := store.ScoresForVerse("unscramble", "John 3:16")
	if err != nil {
		t.Fatalf("ScoresForVerse() failed: %v", err)
	}
	if len(history) != 2 || history[0].Score != 90 {
		t.Errorf("expected newest first, got %+v", history)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("refmatch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("dictation", "Psalm 23", 70) //nolint:errcheck
	store.SaveScore("cryptogram", "Jude 24", 65) //nolint:errcheck

	if err := store.ClearScores("dictation"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("dictation", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("cryptogram", 10); len(scores) != 1 {
		t.Error("ClearScores should only affect one game")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("cryptogram", "John 3:16", 100) //nolint:errcheck
	store.SaveScore("cryptogram", "John 3:16", 50)  //nolint:errcheck
	store.SaveScore("cryptogram", "Jude 25", 90)    //nolint:errcheck
	store.SaveScore("refmatch", "Romans 8:28", 75)  //nolint:errcheck

	stats, err := store.GetGameStats("cryptogram")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.VersesCount != 2 || stats.HighScore != 100 || stats.TotalScore != 240 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 80 {
		t.Errorf("AvgScore = %v, want 80", stats.AvgScore)
	}

	empty, err := store.GetGameStats("unscramble")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty game stats should be zero, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["refmatch"].GamesCount != 1 {
		t.Errorf("unexpected all-games stats: %d games", len(all))
	}
}
