package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// kvQueries holds the dialect-specific statements for the kv table
type kvQueries struct {
	get    string
	upsert string
	delete string
	keys   string
}

var sqliteQueries = kvQueries{
	get: "SELECT value FROM kv WHERE key = ?",
	upsert: `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	delete: "DELETE FROM kv WHERE key = ?",
	keys:   "SELECT key FROM kv ORDER BY key",
}

var postgresQueries = kvQueries{
	get: "SELECT value FROM kv WHERE key = $1",
	upsert: `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	delete: "DELETE FROM kv WHERE key = $1",
	keys:   "SELECT key FROM kv ORDER BY key",
}

func kvGet(db *sql.DB, q kvQueries, key string) ([]byte, bool, error) {
	if db == nil {
		return nil, false, ErrNotLoaded
	}
	var value string
	err := db.QueryRow(q.get, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func kvSet(db *sql.DB, q kvQueries, key string, value []byte, updatedAt interface{}) error {
	if db == nil {
		return ErrNotLoaded
	}
	if _, err := db.Exec(q.upsert, key, string(value), updatedAt); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func kvDelete(db *sql.DB, q kvQueries, key string) error {
	if db == nil {
		return ErrNotLoaded
	}
	if _, err := db.Exec(q.delete, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func kvKeys(db *sql.DB, q kvQueries) ([]string, error) {
	if db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := db.Query(q.keys)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
