package store

import (
	"context"
	"errors"
	"time"

	"convertis/internal/platform/store/pg"
	"convertis/internal/platform/store/trace"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgExecer is the pgx surface shared by *pgxpool.Pool and pgx.Tx
type pgExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgQuerier implements RowQuerier over a pool or a tx and traces every statement
type pgQuerier struct {
	x     pgExecer
	clock trace.Clock
}

func (q pgQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := q.x.Exec(ctx, sql, args...)
	q.clock.Emit(ctx, sql, args, time.Since(start).Microseconds(), err)
	return ct, err
}

func (q pgQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.x.Query(ctx, sql, args...)
	q.clock.Emit(ctx, sql, args, time.Since(start).Microseconds(), err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (q pgQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := q.x.QueryRow(ctx, sql, args...)
	return tracedRow{r: r, after: func(scanErr error) {
		q.clock.Emit(ctx, sql, args, time.Since(start).Microseconds(), scanErr)
	}}
}

// pgAdapter wraps pg.PG and implements TxRunner
type pgAdapter struct {
	pgQuerier
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{pgQuerier: pgQuerier{x: p.Pool, clock: p.Clock()}, p: p}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil {
		return errors.New("pg: nil adapter")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(pgQuerier{x: tx, clock: a.clock}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// tracedRow emits after Scan so the event carries the scan error (incl. no rows)
type tracedRow struct {
	r     Row
	after func(error)
}

func (x tracedRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}
