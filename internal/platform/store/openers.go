package store

import (
	"context"
	"fmt"
	"time"

	"convertis/internal/platform/store/pg"
	"convertis/internal/platform/store/sqlite"
	"convertis/internal/platform/store/trace"
)

var (
	pgMaxAttempts    = 20
	pgBackoffStart   = 150 * time.Millisecond
	pgBackoffCeiling = 2 * time.Second
)

// openPG opens the pool and waits for it to answer before handing out the adapter
func openPG(ctx context.Context, cfg Config, s *Store) (*pgAdapter, error) {
	var tracer trace.QueryTracer
	if cfg.LogSQL {
		tracer = trace.Tracer(s.Log, "pg")
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	const pingTimeout = 3 * time.Second
	var lastErr error
	backoff := pgBackoffStart
	for i := 0; i < pgMaxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, pgBackoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", pgMaxAttempts, lastErr)
}

// openSQLite opens the file database
func openSQLite(ctx context.Context, cfg Config, s *Store) (*liteAdapter, error) {
	var tracer trace.QueryTracer
	if cfg.LogSQL {
		tracer = trace.Tracer(s.Log, "sqlite")
	}
	d, err := sqlite.Open(ctx, sqlite.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMs: cfg.SQLite.BusyTimeoutMs,
		SlowMs:        cfg.SQLite.SlowQueryMs,
	}, tracer)
	if err != nil {
		return nil, err
	}
	mode, err := d.JournalMode(ctx)
	switch {
	case err != nil:
		s.Log.Warn().Err(err).Str("path", cfg.SQLite.Path).Msg("sqlite journal mode unknown")
	case mode != "wal":
		s.Log.Warn().Str("path", cfg.SQLite.Path).Str("journal_mode", mode).Msg("sqlite not in wal mode")
	default:
		s.Log.Info().Str("path", cfg.SQLite.Path).Str("journal_mode", mode).Msg("sqlite opened")
	}
	return newLiteAdapter(d), nil
}
