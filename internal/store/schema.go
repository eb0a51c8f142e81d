package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    blob       BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`
