package storage

import (
	"errors"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("playerName", "Ada"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.Get("playerName")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "Ada" {
		t.Errorf("Get() = %q, want %q", got, "Ada")
	}
}

func testKV(t *testing.T, kv KV) {
	t.Helper()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := kv.Set("k", `{"a":1}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := kv.Set("k", `{"a":2}`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	got, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != `{"a":2}` {
		t.Errorf("Get() = %q, want overwritten value", got)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func testHistory(t *testing.T, h History) {
	t.Helper()

	records := []Completion{
		{RunID: "run-1", Player: "Ada", Level: 1, Attempts: 2, Hints: 0, Duration: 1500 * time.Millisecond},
		{RunID: "run-1", Player: "Ada", Level: 2, Attempts: 1, Hints: 1, Duration: 3 * time.Second},
		{RunID: "run-2", Player: "Bo", Level: 1, Attempts: 4, Hints: 2, Duration: time.Second},
		{RunID: "run-1", Player: "Ada", Level: 3, Attempts: 3, Hints: 1, Duration: 500 * time.Millisecond},
	}
	for _, r := range records {
		if _, err := h.SaveCompletion(r); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}

	ada, err := h.Completions("Ada", 2)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(ada) != 2 {
		t.Fatalf("Expected 2 completions, got %d", len(ada))
	}
	// Newest first
	if ada[0].Level != 3 || ada[1].Level != 2 {
		t.Errorf("Completions order = %d, %d; want 3, 2", ada[0].Level, ada[1].Level)
	}
	if ada[1].Duration != 3*time.Second {
		t.Errorf("Duration = %v, want 3s", ada[1].Duration)
	}
	if ada[0].RunID != "run-1" {
		t.Errorf("RunID = %q", ada[0].RunID)
	}
	if ada[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	stats, err := h.PlayerStats("Ada")
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}
	if stats.Completions != 3 || stats.HighestLevel != 3 {
		t.Errorf("Completions/HighestLevel = %d/%d, want 3/3", stats.Completions, stats.HighestLevel)
	}
	if stats.TotalAttempts != 6 || stats.TotalHints != 2 {
		t.Errorf("TotalAttempts/TotalHints = %d/%d, want 6/2", stats.TotalAttempts, stats.TotalHints)
	}
	if stats.TotalTime != 5*time.Second {
		t.Errorf("TotalTime = %v, want 5s", stats.TotalTime)
	}

	none, err := h.PlayerStats("Nobody")
	if err != nil {
		t.Fatalf("PlayerStats(Nobody) failed: %v", err)
	}
	if none.Completions != 0 || !none.LastPlayed.IsZero() {
		t.Errorf("PlayerStats(Nobody) = %+v, want zero", none)
	}

	all, err := h.AllPlayerStats()
	if err != nil {
		t.Fatalf("AllPlayerStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 players, got %d", len(all))
	}
	if all["Bo"].TotalAttempts != 4 {
		t.Errorf("Bo TotalAttempts = %d, want 4", all["Bo"].TotalAttempts)
	}
}

func TestStoreKV(t *testing.T) {
	testKV(t, openTestStore(t))
}

func TestStoreHistory(t *testing.T) {
	testHistory(t, openTestStore(t))
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestMemoryHistory(t *testing.T) {
	testHistory(t, NewMemory())
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	m.FailWrites = errors.New("quota exceeded")
	if err := m.Set("k", "w"); err == nil {
		t.Error("Set() should fail")
	}
	if err := m.Delete("k"); err == nil {
		t.Error("Delete() should fail")
	}

	// Reads keep working and see the last good write
	got, err := m.Get("k")
	if err != nil || got != "v" {
		t.Errorf("Get() = %q, %v", got, err)
	}
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "k" {
		t.Errorf("Keys() = %v", keys)
	}
}
