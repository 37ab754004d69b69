package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thesavant42/reporadar/internal/filter"

	_ "modernc.org/sqlite"
)

// storeKey namespaces the persisted record, matching the storage key
// the tool has always used.
const storeKey = "repo-radar-store"

// PersistedState is the single record persisted across sessions.
// Scan results are deliberately not persisted - only preferences and
// history.
type PersistedState struct {
	RecentScans         []string    `json:"recentScans"`
	RepositoryFilters   filter.Spec `json:"repositoryFilters"`
	LastScannedUsername string      `json:"lastScannedUsername,omitempty"`
}

// DefaultState returns the compiled-in defaults used on first run and
// whenever the stored shape cannot be read.
func DefaultState() PersistedState {
	return PersistedState{
		RecentScans:       []string{},
		RepositoryFilters: filter.DefaultSpec(),
	}
}

// DB wraps the SQLite preferences database.
type DB struct {
	conn *sql.DB
}

// New opens (creating if needed) the preferences database at dbPath
// and initializes the schema.
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createPreferencesTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create preferences schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveState writes the persisted record synchronously.
func (db *DB) SaveState(state PersistedState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if _, err := db.conn.Exec(upsertPreference, storeKey, string(value)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// LoadState reads the persisted record. A missing or unreadable
// record fails soft to the compiled-in defaults - there is no version
// field and no migration strategy.
func (db *DB) LoadState() PersistedState {
	var value string
	err := db.conn.QueryRow(selectPreference, storeKey).Scan(&value)
	if err != nil {
		return DefaultState()
	}

	var state PersistedState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return DefaultState()
	}

	if state.RecentScans == nil {
		state.RecentScans = []string{}
	}
	if state.RepositoryFilters.SortBy == "" {
		state.RepositoryFilters = filter.DefaultSpec()
	}

	return state
}
