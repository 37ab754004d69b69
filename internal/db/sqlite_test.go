package db

import (
	"path/filepath"
	"testing"

	"github.com/thesavant42/reporadar/internal/filter"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "reporadar.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestLoadStateDefaultsWhenEmpty(t *testing.T) {
	database := openTestDB(t)

	state := database.LoadState()
	if len(state.RecentScans) != 0 {
		t.Errorf("recent scans = %v, want empty", state.RecentScans)
	}
	if state.RepositoryFilters != filter.DefaultSpec() {
		t.Errorf("filters = %+v, want defaults", state.RepositoryFilters)
	}
	if state.LastScannedUsername != "" {
		t.Errorf("last scanned = %q, want empty", state.LastScannedUsername)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	database := openTestDB(t)

	saved := PersistedState{
		RecentScans: []string{"torvalds", "octocat"},
		RepositoryFilters: filter.Spec{
			SortBy:    filter.SortFullName,
			Direction: filter.DirectionAsc,
			Type:      filter.TypeOwner,
			Language:  "Go",
			Search:    "kernel",
		},
		LastScannedUsername: "torvalds",
	}
	if err := database.SaveState(saved); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	loaded := database.LoadState()
	if loaded.LastScannedUsername != "torvalds" {
		t.Errorf("last scanned = %q", loaded.LastScannedUsername)
	}
	if len(loaded.RecentScans) != 2 || loaded.RecentScans[0] != "torvalds" {
		t.Errorf("recent scans = %v", loaded.RecentScans)
	}
	if loaded.RepositoryFilters != saved.RepositoryFilters {
		t.Errorf("filters = %+v, want %+v", loaded.RepositoryFilters, saved.RepositoryFilters)
	}
}

func TestLoadStateFailsSoftOnCorruptValue(t *testing.T) {
	database := openTestDB(t)

	if _, err := database.conn.Exec(upsertPreference, storeKey, "{not json"); err != nil {
		t.Fatalf("failed to plant corrupt value: %v", err)
	}

	state := database.LoadState()
	if state.RepositoryFilters != filter.DefaultSpec() {
		t.Errorf("corrupt value should fail soft to defaults, got %+v", state.RepositoryFilters)
	}
}

func TestSaveStateOverwrites(t *testing.T) {
	database := openTestDB(t)

	first := DefaultState()
	first.LastScannedUsername = "first"
	second := DefaultState()
	second.LastScannedUsername = "second"

	if err := database.SaveState(first); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := database.SaveState(second); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if got := database.LoadState().LastScannedUsername; got != "second" {
		t.Errorf("last scanned = %q, want second", got)
	}
}
