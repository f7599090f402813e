package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"convertis/internal/platform/store/sqlite"
	"convertis/internal/platform/store/trace"
)

// sqlExecer is the database/sql surface shared by *sql.DB and *sql.Tx
type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// liteQuerier implements RowQuerier over database/sql for SQLite
type liteQuerier struct {
	x     sqlExecer
	clock trace.Clock
}

func (q liteQuerier) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := q.x.ExecContext(ctx, query, args...)
	q.clock.Emit(ctx, query, args, time.Since(start).Microseconds(), err)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	return affected(n), nil
}

func (q liteQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.x.QueryContext(ctx, query, args...)
	q.clock.Emit(ctx, query, args, time.Since(start).Microseconds(), err)
	if err != nil {
		return nil, err
	}
	return liteRows{rs}, nil
}

func (q liteQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	start := time.Now()
	r := q.x.QueryRowContext(ctx, query, args...)
	return tracedRow{r: liteRow{r}, after: func(scanErr error) {
		q.clock.Emit(ctx, query, args, time.Since(start).Microseconds(), scanErr)
	}}
}

// liteAdapter wraps sqlite.DB and implements TxRunner
type liteAdapter struct {
	liteQuerier
	d *sqlite.DB
}

func newLiteAdapter(d *sqlite.DB) *liteAdapter {
	return &liteAdapter{liteQuerier: liteQuerier{x: d.DB, clock: d.Clock()}, d: d}
}

func (a *liteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.d == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.d.DB.PingContext(ctx)
}

func (a *liteAdapter) Close() error { return a.d.Close() }

func (a *liteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(liteQuerier{x: tx, clock: a.clock}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// affected satisfies CommandTag from sql.Result
type affected int64

func (n affected) RowsAffected() int64 { return int64(n) }

// liteRows adapts *sql.Rows; Close has no error in our Rows contract
type liteRows struct{ r *sql.Rows }

func (x liteRows) Next() bool            { return x.r.Next() }
func (x liteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x liteRows) Err() error            { return x.r.Err() }
func (x liteRows) Close()                { _ = x.r.Close() }

// liteRow adapts *sql.Row; use IsNoRows to test for an empty result
type liteRow struct{ r *sql.Row }

func (x liteRow) Scan(dst ...any) error { return x.r.Scan(dst...) }
