// Package store provides one SQL seam over the configured backend (Postgres or SQLite)
package store

import (
	"context"
	"errors"
	"fmt"

	"convertis/internal/platform/logger"
)

// Dialect names the SQL backend behind a Store
type Dialect string

const (
	// DialectPG is Postgres via pgxpool
	DialectPG Dialect = "pg"
	// DialectSQLite is SQLite via database/sql + go-sqlite3
	DialectSQLite Dialect = "sqlite"
)

// Store is the facade handed to modules
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// SQL is the sql seam, nil until Open succeeds
	SQL TxRunner

	// Dialect tells repos which embedded DDL to run
	Dialect Dialect
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql.
// Statements use $1..$n placeholders, numbered in order of first use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects the backend selected by cfg.Driver
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	switch cfg.Driver {
	case DialectPG:
		a, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.SQL, s.Dialect = a, DialectPG
	case DialectSQLite, "":
		a, err := openSQLite(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.SQL, s.Dialect = a, DialectSQLite
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
	return s, nil
}

// Guard pings the sql seam
func (s *Store) Guard(ctx context.Context) error {
	if s == nil || s.SQL == nil {
		return errors.New("store not opened")
	}
	if p, ok := s.SQL.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.Dialect, err)
		}
	}
	return nil
}

// Close releases the backend; safe on nil or unopened stores
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.SQL.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
