// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package searchlog persists every query answered by the server in a
// SQLite database so that past searches can be listed and exported.
package searchlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/shakesearch/pkg/types"
)

// DefaultPath is the database file used when the configuration names none.
const DefaultPath = "data/searchlog.db"

// timeLayout is fixed-width so that timestamps sort lexically in SQL.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one answered query.
type Entry struct {
	ID        int64         `json:"id" yaml:"id"`
	Query     string        `json:"query" yaml:"query"`
	Terms     []string      `json:"terms" yaml:"terms"`
	Works     int           `json:"works" yaml:"works"`
	Fragments int           `json:"fragments" yaml:"fragments"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// QueryCount is a query string with the number of times it was searched.
type QueryCount struct {
	Query    string    `json:"query" yaml:"query"`
	Count    int       `json:"count" yaml:"count"`
	LastSeen time.Time `json:"last_seen" yaml:"last_seen"`
}

// Store manages the search log database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the database at cfg.Path and creates the schema
// if it does not exist.
func Open(cfg types.SearchLogConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating search log directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS queries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			terms TEXT,
			works INTEGER NOT NULL DEFAULT 0,
			fragments INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_query ON queries(query)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one answered query. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	termsJSON, _ := json.Marshal(e.Terms)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (query, terms, works, fragments, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Query, string(termsJSON), e.Works, e.Fragments,
		e.Duration.Milliseconds(), e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("recording query: %w", err)
	}
	return nil
}

func (s *Store) limit(n int) int {
	if n <= 0 {
		return s.maxResults
	}
	return n
}

// Recent returns the latest entries, newest first. A non-positive limit
// uses the configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, terms, works, fragments, duration_ms, created_at
		 FROM queries ORDER BY created_at DESC, id DESC LIMIT ?`, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying search log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			termsJSON sql.NullString
			durMS     int64
			created   string
		)
		if err := rows.Scan(&e.ID, &e.Query, &termsJSON, &e.Works, &e.Fragments, &durMS, &created); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if termsJSON.Valid {
			json.Unmarshal([]byte(termsJSON.String), &e.Terms)
		}
		e.Duration = time.Duration(durMS) * time.Millisecond
		e.CreatedAt, _ = time.Parse(timeLayout, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Top returns the most frequently searched queries, most frequent first.
// Ties go to the query searched most recently.
func (s *Store) Top(ctx context.Context, limit int) ([]QueryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT query, COUNT(*) AS n, MAX(created_at) AS last_seen
		 FROM queries GROUP BY query
		 ORDER BY n DESC, last_seen DESC LIMIT ?`, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying top searches: %w", err)
	}
	defer rows.Close()

	var counts []QueryCount
	for rows.Next() {
		var (
			qc       QueryCount
			lastSeen string
		)
		if err := rows.Scan(&qc.Query, &qc.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		qc.LastSeen, _ = time.Parse(timeLayout, lastSeen)
		counts = append(counts, qc)
	}
	return counts, rows.Err()
}
