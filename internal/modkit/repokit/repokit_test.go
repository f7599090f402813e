package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"convertis/internal/platform/store"
)

// fakeTx records statements; Tx calls fn with itself
type fakeTx struct {
	execs []string
	args  [][]any
	err   error
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	return nil, f.err
}
func (f *fakeTx) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeTx) QueryRow(context.Context, string, ...any) store.Row       { return nil }
func (f *fakeTx) Tx(_ context.Context, fn func(q Queryer) error) error     { return fn(f) }

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if err, ok := r.(error); !ok || !strings.Contains(err.Error(), want) {
			t.Fatalf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}

func TestBindFunc(t *testing.T) {
	t.Parallel()
	b := BindFunc[string](func(Queryer) string { return "ok" })
	if got := MustBind[string](b, &fakeTx{}); got != "ok" {
		t.Fatalf("MustBind = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("nil Queryer should panic")
		}
	}()
	_ = MustBind[string](b, nil)
}

func TestBeginHooks_RunBeforeFn(t *testing.T) {
	t.Parallel()
	inner := &fakeTx{}
	tx := WithBeginHooks(inner, PGAdvisoryXactLock(7))

	err := WithTx(context.Background(), tx, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "create table x ()")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(inner.execs) != 2 || inner.execs[0] != "select pg_advisory_xact_lock($1)" || inner.args[0][0] != int64(7) {
		t.Fatalf("execs = %v args = %v", inner.execs, inner.args)
	}
}

func TestBeginHooks_ErrorStopsFn(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	called := false
	tx := WithBeginHooks(&fakeTx{}, func(context.Context, Queryer) error { return boom })
	err := tx.Tx(context.Background(), func(Queryer) error { called = true; return nil })
	if !errors.Is(err, boom) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestLockKey_Stable(t *testing.T) {
	t.Parallel()
	if LockKey("convertis.schema") != LockKey("convertis.schema") || LockKey("a") == LockKey("b") {
		t.Fatal("LockKey should be deterministic and discriminating")
	}
}

type fakeGuard struct{ err error }

func (f fakeGuard) Guard(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return f.err
}

func TestMustGuard(t *testing.T) {
	t.Parallel()
	MustGuard(context.Background(), fakeGuard{})
	mustPanic(t, "dependency guard failed: boom", func() {
		MustGuard(context.Background(), fakeGuard{err: errors.New("boom")})
	})
}
