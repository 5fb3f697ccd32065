// Package store provides a SQLite-backed cache for rendered reports.
//
// Rendering a report is cheap; re-reading and re-parsing the data files it
// depends on is not. The cache keys a rendered document by a digest of the
// report parameters and remembers the mtime and size of every data file that
// fed it, so a report is served from cache only while its inputs are
// untouched.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed report caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key digests a report kind and its parameters into a cache key. Parameter
// order matters: callers pass them in a fixed order.
func Key(kind string, params ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, p := range params {
		h.Write([]byte{0}) // separator, so ("ab","c") != ("a","bc")
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// GetReport returns the cached markdown for a key, or ok=false on a miss.
func (c *Cache) GetReport(key string) (markdown string, ok bool, err error) {
	err = c.db.QueryRow("SELECT markdown FROM reports WHERE cache_key = ?", key).Scan(&markdown)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return markdown, true, nil
}

// SaveReport stores a rendered report and the tracking info of the data
// files it was computed from.
func (c *Cache) SaveReport(key, kind, markdown string, files ...string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO reports (cache_key, kind, markdown, rendered_at)
		VALUES (?, ?, ?, ?)`, key, kind, markdown, now)
	if err != nil {
		return err
	}

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("tracking %q: %w", path, err)
		}
		_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
			VALUES (?, ?, ?)`, path, info.ModTime().UnixNano(), info.Size())
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Fresh reports whether every given data file is unchanged since it was last
// tracked. An untracked or missing file counts as changed.
func (c *Cache) Fresh(files ...string) (bool, error) {
	for _, path := range files {
		var mtimeNs, sizeBytes int64
		err := c.db.QueryRow("SELECT mtime_ns, size_bytes FROM file_tracker WHERE file_path = ?", path).
			Scan(&mtimeNs, &sizeBytes)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return false, nil
		}
		if info.ModTime().UnixNano() != mtimeNs || info.Size() != sizeBytes {
			return false, nil
		}
	}
	return true, nil
}

// Invalidate removes every cached report of one kind, or all reports when
// kind is empty.
func (c *Cache) Invalidate(kind string) error {
	if kind == "" {
		_, err := c.db.Exec("DELETE FROM reports")
		return err
	}
	_, err := c.db.Exec("DELETE FROM reports WHERE kind = ?", kind)
	return err
}

// ReportCount returns the number of cached reports.
func (c *Cache) ReportCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}
