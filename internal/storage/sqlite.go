// Package storage persists site content and the leaderboard in SQLite.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the site database.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &DB{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *DB) Close() error {
	return s.db.Close()
}

func (s *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS content (k TEXT PRIMARY KEY, v TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Seed inserts defaults for keys that have no value yet.
func (s *DB) Seed(defaults map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	defer tx.Rollback()
	for k, v := range defaults {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO content(k, v) VALUES(?, ?)`, k, v); err != nil {
			return fmt.Errorf("seed %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Content returns every content entry.
func (s *DB) Content() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT k, v FROM content`)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// UpdateContent upserts every entry of values in one transaction.
func (s *DB) UpdateContent(values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	defer tx.Rollback()
	for k, v := range values {
		_, err := tx.Exec(`INSERT INTO content(k, v) VALUES(?, ?)
			ON CONFLICT(k) DO UPDATE SET v = excluded.v`, k, v)
		if err != nil {
			return fmt.Errorf("update %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Get returns the value stored under key, or "" when there is none.
func (s *DB) Get(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

// Put stores value under key.
func (s *DB) Put(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv(k, v, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at`, key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Record is a score.Backend over one kv entry.
type Record struct {
	DB  *DB
	Key string
}

func (r Record) Load() (string, error)  { return r.DB.Get(r.Key) }
func (r Record) Save(text string) error { return r.DB.Put(r.Key, text) }
