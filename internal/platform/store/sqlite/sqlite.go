// Package sqlite opens the embedded SQLite backend through database/sql and go-sqlite3
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"convertis/internal/platform/store/trace"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by go-sqlite3
const DriverName = "sqlite3"

// Config configures the SQLite file and connection pragmas
type Config struct {
	Path          string
	BusyTimeoutMs int // default 5000
	SlowMs        int
}

// DB is a SQLite handle with optional tracer
type DB struct {
	DB     *sql.DB
	Tracer trace.QueryTracer
	SlowMs int
}

// DSN builds a go-sqlite3 DSN that applies WAL, NORMAL sync, busy timeout and
// foreign keys on every connection the pool opens
func DSN(cfg Config) string {
	busy := cfg.BusyTimeoutMs
	if busy <= 0 {
		busy = 5000
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_synchronous", "NORMAL")
	q.Set("_busy_timeout", strconv.Itoa(busy))
	q.Set("_foreign_keys", "on")
	q.Set("_txlock", "immediate")

	path := cfg.Path
	if path == ":memory:" {
		q.Set("cache", "shared")
		q.Set("mode", "memory")
		path = "convertis"
	}
	return "file:" + path + "?" + q.Encode()
}

// Open creates the parent directory if needed, opens and pings the database.
// SQLite allows one writer, so the pool holds a single connection
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer) (*DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite: create dir: %w", err)
			}
		}
	}

	db, err := sql.Open(DriverName, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", cfg.Path, err)
	}
	return &DB{DB: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Clock returns the tracing clock for statements run on this handle
func (d *DB) Clock() trace.Clock { return trace.Clock{Tracer: d.Tracer, SlowMs: d.SlowMs} }

// JournalMode reports the active journal mode (e.g. "wal")
func (d *DB) JournalMode(ctx context.Context) (string, error) {
	var mode string
	err := d.DB.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode)
	return strings.ToLower(mode), err
}

// Close closes the handle
func (d *DB) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
