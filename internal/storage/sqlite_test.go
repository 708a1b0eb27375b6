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

	sessions := []SessionEntry{
		{SketchID: "particles", Ticks: 600, Spawned: 120, PeakEntities: 48, DurationSecs: 10},
		{SketchID: "particles", Ticks: 1200, Spawned: 300, PeakEntities: 96, DurationSecs: 20},
		{SketchID: "bouncer", Ticks: 300, Spawned: 5, PeakEntities: 5, DurationSecs: 5},
	}
	for _, e := range sessions {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	entries, err := store.RecentSessions("particles", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 particle sessions, got %d", len(entries))
	}

	// Newest first
	if entries[0].Ticks != 1200 {
		t.Errorf("Expected newest session first (1200 ticks), got %d", entries[0].Ticks)
	}
	if entries[1].Spawned != 120 {
		t.Errorf("Expected older session second (120 spawned), got %d", entries[1].Spawned)
	}
}

func TestRecentSessionsAcrossSketches(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 100})
	store.SaveSession(SessionEntry{SketchID: "bouncer", Ticks: 200})
	store.SaveSession(SessionEntry{SketchID: "sprite", Ticks: 300})

	entries, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 sessions across all sketches, got %d", len(entries))
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionEntry{SketchID: "particles", Ticks: (i + 1) * 100})
	}

	entries, err := store.RecentSessions("particles", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(entries))
	}

	// Newest three: 500, 400, 300
	if entries[0].Ticks != 500 || entries[1].Ticks != 400 || entries[2].Ticks != 300 {
		t.Errorf("Sessions not in expected order: %v", entries)
	}
}

func TestPeakEntities(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	peak, err := store.PeakEntities("particles")
	if err != nil {
		t.Fatalf("PeakEntities() failed: %v", err)
	}
	if peak != 0 {
		t.Errorf("Expected peak of 0 for empty journal, got %d", peak)
	}

	store.SaveSession(SessionEntry{SketchID: "particles", PeakEntities: 48})
	store.SaveSession(SessionEntry{SketchID: "particles", PeakEntities: 96})
	store.SaveSession(SessionEntry{SketchID: "particles", PeakEntities: 72})

	peak, err = store.PeakEntities("particles")
	if err != nil {
		t.Fatalf("PeakEntities() failed: %v", err)
	}
	if peak != 96 {
		t.Errorf("Expected peak of 96, got %d", peak)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 100})
	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 200})
	store.SaveSession(SessionEntry{SketchID: "bouncer", Ticks: 300})

	if err := store.ClearSessions("particles"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	particleSessions, _ := store.RecentSessions("particles", 10)
	if len(particleSessions) != 0 {
		t.Errorf("Expected 0 particle sessions after clear, got %d", len(particleSessions))
	}

	bouncerSessions, _ := store.RecentSessions("bouncer", 10)
	if len(bouncerSessions) != 1 {
		t.Errorf("Bouncer sessions should not be affected by clearing particles")
	}
}

func TestGetSketchStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 100, Spawned: 50, PeakEntities: 20, DurationSecs: 10})
	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 300, Spawned: 150, PeakEntities: 60, DurationSecs: 30})

	stats, err := store.GetSketchStats("particles")
	if err != nil {
		t.Fatalf("GetSketchStats() failed: %v", err)
	}

	if stats.SessionCount != 2 {
		t.Errorf("SessionCount = %d, expected 2", stats.SessionCount)
	}
	if stats.TotalTicks != 400 {
		t.Errorf("TotalTicks = %d, expected 400", stats.TotalTicks)
	}
	if stats.TotalSpawned != 200 {
		t.Errorf("TotalSpawned = %d, expected 200", stats.TotalSpawned)
	}
	if stats.MaxPeak != 60 {
		t.Errorf("MaxPeak = %d, expected 60", stats.MaxPeak)
	}
	if stats.AvgDuration != 20 {
		t.Errorf("AvgDuration = %v, expected 20", stats.AvgDuration)
	}
}

func TestGetSketchStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetSketchStats("never-run")
	if err != nil {
		t.Fatalf("GetSketchStats() failed: %v", err)
	}
	if stats.SessionCount != 0 {
		t.Errorf("SessionCount = %d, expected 0", stats.SessionCount)
	}
}

func TestGetAllSketchStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{SketchID: "particles", Ticks: 100})
	store.SaveSession(SessionEntry{SketchID: "bouncer", Ticks: 200})

	stats, err := store.GetAllSketchStats()
	if err != nil {
		t.Fatalf("GetAllSketchStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 sketches, got %d", len(stats))
	}
	if stats["particles"] == nil || stats["bouncer"] == nil {
		t.Error("Expected entries for both sketches")
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
