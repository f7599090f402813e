// Package pg provides a Postgres client using pgxpool with optional query tracing
package pg

import (
	"context"

	"convertis/internal/platform/store/trace"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures pgxpool for pg
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	AppName  string
}

// PG is a postgres client with pool and optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer trace.QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open creates a pool from cfg; poolCfgMut may tweak the parsed pool config
func Open(ctx context.Context, cfg Config, tracer trace.QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Clock returns the tracing clock for statements run on this client
func (p *PG) Clock() trace.Clock { return trace.Clock{Tracer: p.Tracer, SlowMs: p.SlowMs} }

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
