// Package trace carries SQL query events from the store adapters to zerolog
package trace

import (
	"context"
	"strings"

	"convertis/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer returns a tracer that always prints SQL, independent of the root level.
// backend names the component field ("pg", "sqlite")
func Tracer(root logger.Logger, backend string) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", backend).Logger()
	return &zlTracer{log: ll, msg: backend + " query"}
}

type zlTracer struct {
	log logger.Logger
	msg string
}

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg(z.msg)
}

// Compact collapses runs of whitespace so multi-line SQL logs on one line
func Compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Clock reports statements to a tracer with slow marking; the zero value is disabled
type Clock struct {
	Tracer QueryTracer
	SlowMs int
}

// Emit reports one statement that took elapsedUS; no-op without a tracer
func (c Clock) Emit(ctx context.Context, sql string, args []any, elapsedUS int64, err error) {
	if c.Tracer == nil {
		return
	}
	c.Tracer.OnQuery(ctx, QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      c.SlowMs >= 0 && elapsedUS >= int64(c.SlowMs)*1000,
	})
}
