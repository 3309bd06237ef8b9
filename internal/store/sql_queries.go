package store

const createClientStateTable = `
CREATE TABLE IF NOT EXISTS client_state (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const upsertStateValue = `
INSERT INTO client_state (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

const getStateValue = `SELECT value FROM client_state WHERE key = ?;`

const deleteStateValue = `DELETE FROM client_state WHERE key = ?;`
