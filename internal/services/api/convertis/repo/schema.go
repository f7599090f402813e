package repo

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"convertis/internal/modkit/repokit"
	"convertis/internal/platform/store"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// schemaLock serializes schema creation across api replicas sharing one postgres
var schemaLock = repokit.LockKey("convertis.schema")

// DDL returns the schema statements for a dialect
func DDL(d store.Dialect) ([]string, error) {
	name := "schema/sqlite.sql"
	if d == store.DialectPG {
		name = "schema/pg.sql"
	}
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var out []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// EnsureSchema creates the table and indexes if absent; safe to run on every start
func EnsureSchema(ctx context.Context, db repokit.TxRunner, d store.Dialect) error {
	stmts, err := DDL(d)
	if err != nil {
		return err
	}
	if d == store.DialectPG {
		db = repokit.WithBeginHooks(db, repokit.PGAdvisoryXactLock(schemaLock))
	}
	return repokit.WithTx(ctx, db, func(q repokit.Queryer) error {
		for _, s := range stmts {
			if _, err := q.Exec(ctx, s); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
		}
		return nil
	})
}
