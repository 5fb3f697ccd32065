package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reports (
    cache_key            TEXT PRIMARY KEY,
    kind                 TEXT NOT NULL,
    markdown             TEXT NOT NULL,
    rendered_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_kind ON reports(kind);
`
