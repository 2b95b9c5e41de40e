// Package sqlite provides a SQLite-backed storage provider.
//
// Each record type gets its own table in the database file:
//
//	students          Student records
//	football_players  FootballPlayer records
//	lawyers           Lawyer records
//
// so several record types can share one .db file without overwriting each
// other. Rows keep the key columns for inspection with the sqlite3 shell
// and the complete record as JSON in the details column.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/people-registry/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite implements the provider contract for record type T.
// It opens the database on every call and closes it before returning;
// no connection outlives an operation.
type SQLite[T types.Record] struct{}

// New returns a SQLite provider for T.
func New[T types.Record]() *SQLite[T] {
	return &SQLite[T]{}
}

// dataSource turns path into a file: URI so that characters such as '#',
// '?' and '%' in the name are escaped the same way for every open.
func dataSource(path, query string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: query}
	return u.String(), nil
}

func tableName[T types.Record]() string {
	var zero T
	switch zero.RecordType() {
	case types.TagStudent:
		return "students"
	case types.TagFootballPlayer:
		return "football_players"
	default:
		return "lawyers"
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Load returns every row of T's table ordered by id, which is the order
// the rows were saved in.
//
// A missing or zero-length file, or a database without T's table, is an
// empty collection. Load never creates the file.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite[T]) Load(path string) ([]T, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []T{}, nil
	}

	dsn, err := dataSource(path, "mode=ro")
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: open db: %w", err)
	}
	defer db.Close()

	table := tableName[T]()

	var count int
	err = db.QueryRow(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		table,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: lookup table: %w", err)
	}
	if count == 0 {
		return []T{}, nil
	}

	rows, err := db.Query("SELECT details FROM " + table + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: query: %w", err)
	}
	defer rows.Close()

	data := make([]T, 0)
	for rows.Next() {
		var details string
		if err := rows.Scan(&details); err != nil {
			return nil, fmt.Errorf("sqlite.Load: scan row: %w", err)
		}

		var rec T
		if err := json.Unmarshal([]byte(details), &rec); err != nil {
			return nil, fmt.Errorf("sqlite.Load: decode row: %w", err)
		}
		data = append(data, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Load: rows iteration: %w", err)
	}

	return data, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save replaces the content of T's table with data inside one transaction.
// Tables of other record types in the same file are left alone.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite[T]) Save(path string, data []T) error {
	dsn, err := dataSource(path, "")
	if err != nil {
		return fmt.Errorf("sqlite.Save: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("sqlite.Save: open db: %w", err)
	}
	defer db.Close()

	table := tableName[T]()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + table + ` (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			passport   TEXT NOT NULL,
			details    TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("sqlite.Save: create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.Save: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("sqlite.Save: clear table: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO " + table + " (first_name, last_name, passport, details) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("sqlite.Save: prepare: %w", err)
	}
	defer stmt.Close()

	for _, rec := range data {
		details, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("sqlite.Save: encode row: %w", err)
		}

		p := rec.Identity()
		if _, err := stmt.Exec(p.FirstName, p.LastName, p.Passport, string(details)); err != nil {
			return fmt.Errorf("sqlite.Save: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.Save: commit: %w", err)
	}

	return nil
}
