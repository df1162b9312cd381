package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed store of previously fetched query results.
// It lives entirely outside the ampache client: the client never reads
// or writes it, the Browser consults it before going to the network.
type Cache struct {
	db *sql.DB
}

// NewCache opens (creating if needed) a cache database at dbPath.
// Use ":memory:" for an ephemeral cache.
func NewCache(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases coherent and is
	// plenty for a CLI workload.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS responses (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_fetched_at ON responses(fetched_at);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get loads the entry stored under key into out. Returns false without
// error on a miss, and treats entries older than maxAge as misses
// (maxAge <= 0 disables expiry).
func (c *Cache) Get(ctx context.Context, key string, maxAge time.Duration, out interface{}) (bool, error) {
	var payload string
	var fetchedAt int64

	row := c.db.QueryRowContext(ctx,
		"SELECT payload, fetched_at FROM responses WHERE key = ?", key)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if maxAge > 0 && time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return false, nil
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, nil
}

// Put stores value under key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO responses (key, payload, fetched_at) VALUES (?, ?, ?)",
		key, string(payload), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Purge removes entries older than maxAge to prevent unbounded growth.
func (c *Cache) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := c.db.ExecContext(ctx,
		"DELETE FROM responses WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// cacheKey builds a stable key from an action name and its parameters.
func cacheKey(action string, parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, action)
	for _, p := range parts {
		escaped = append(escaped, url.QueryEscape(p))
	}
	return strings.Join(escaped, "&")
}
