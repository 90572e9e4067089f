// Package store persists board state as keyed JSON records in a local
// sqlite database. The board has exactly three logical records (layout,
// slot map, per-year calendar envelope), so the schema is a single
// key/value table written through on every change.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the key/value contract the engines persist through. Get reports
// presence instead of returning an error: a missing record is a normal
// condition answered with defaults, never a failure.
//
//go:generate mockgen -source=store.go -destination=mockstore/mock_store.go -package=mockstore
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// DB is the sqlite-backed Store.
type DB struct {
	conn *sql.DB
}

var _ Store = (*DB)(nil)

// Open opens (creating if needed) the board database at path.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS board_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		conn.Close()
		return nil, &OpError{Op: "migrate", Key: "board_state", Err: err}
	}
	return &DB{conn: conn}, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Get returns the stored value for key, and whether one exists.
func (d *DB) Get(key string) (string, bool) {
	var value string
	err := d.conn.QueryRow("SELECT value FROM board_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set writes value under key, replacing any prior value.
func (d *DB) Set(key, value string) error {
	_, err := d.conn.Exec(
		"INSERT INTO board_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return &OpError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (d *DB) Delete(key string) error {
	_, err := d.conn.Exec("DELETE FROM board_state WHERE key = ?", key)
	if err != nil {
		return &OpError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Keys returns all stored keys, for diagnostics.
func (d *DB) Keys() ([]string, error) {
	rows, err := d.conn.Query("SELECT key FROM board_state ORDER BY key")
	if err != nil {
		return nil, &OpError{Op: "keys", Err: err}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &OpError{Op: "keys", Err: err}
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	return keys, nil
}
