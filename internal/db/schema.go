package db

const createPreferencesTable = `
CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

const upsertPreference = `
INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)
`

const selectPreference = `
SELECT value FROM preferences WHERE key = ?
`
