package repokit

import (
	"context"
	"hash/fnv"
)

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

// Tx starts a tx on inner then runs all hooks before fn
func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// LockKey derives a stable advisory lock key from a name
func LockKey(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}

// PGAdvisoryXactLock takes a Postgres transaction-scoped advisory lock on key;
// it is released on commit or rollback
func PGAdvisoryXactLock(key int64) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "select pg_advisory_xact_lock($1)", key)
		return err
	}
}
