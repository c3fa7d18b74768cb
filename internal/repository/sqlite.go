package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite keeps the document in one row of an embedded database file.
type SQLite struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens (and creates if needed) the database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repository.SQLite, open %s: %w", path, err)
	}
	// one writer at a time, sqlite serializes them anyway
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewSQLite(ctx context.Context, db *sql.DB, name string) (*SQLite, error) {
	query := `CREATE TABLE IF NOT EXISTS ledgers (
		name       TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("repository.SQLite, create table: %w", err)
	}
	return &SQLite{
		db:   db,
		name: name,
	}, nil
}

func (s *SQLite) Read(ctx context.Context) ([]byte, error) {
	query := `SELECT document FROM ledgers WHERE name = ?`
	var document string
	err := s.db.QueryRowContext(ctx, query, s.name).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundErr
	}
	if err != nil {
		return nil, fmt.Errorf("repository.SQLite, read ledger: %w", err)
	}
	return []byte(document), nil
}

func (s *SQLite) Write(ctx context.Context, data []byte) error {
	query := `INSERT INTO ledgers (name, document, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, s.name, string(data)); err != nil {
		return fmt.Errorf("repository.SQLite, write ledger: %w", err)
	}
	return nil
}

var _ Document = (*SQLite)(nil)
