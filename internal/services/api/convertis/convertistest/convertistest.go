// Package convertistest opens throwaway stores with the convertis schema applied
package convertistest

import (
	"context"
	"testing"

	"convertis/internal/platform/logger"
	"convertis/internal/platform/store"
	"convertis/internal/platform/testkit"
	"convertis/internal/services/api/convertis/repo"

	"github.com/stretchr/testify/require"
)

// SQLite returns a store on a fresh sqlite file with the schema in place
func SQLite(t *testing.T) *store.Store {
	t.Helper()
	return open(t, store.Config{
		AppName: "convertis-test",
		Driver:  store.DialectSQLite,
		SQLite:  store.SQLiteConfig{Path: testkit.TempDB(t), BusyTimeoutMs: 5000},
	})
}

// PG returns a store on the given postgres dsn with the schema in place
func PG(t *testing.T, dsn string) *store.Store {
	t.Helper()
	return open(t, store.Config{
		AppName: "convertis-test",
		Driver:  store.DialectPG,
		PG:      store.PGConfig{URL: dsn, MaxConns: 8},
	})
}

func open(t *testing.T, cfg store.Config) *store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Get()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, repo.EnsureSchema(ctx, st.SQL, st.Dialect))
	return st
}
