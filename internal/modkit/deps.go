// Package modkit provides module wiring and core deps
package modkit

import (
	"convertis/internal/modkit/repokit"
	"convertis/internal/platform/config"
	"convertis/internal/platform/logger"
	"convertis/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// DB is the sql seam; nil in tests that only exercise routing
	DB repokit.TxRunner

	// Dialect selects per-backend DDL and lock helpers
	Dialect store.Dialect
}

// DepsFrom builds Deps from an opened store
func DepsFrom(log logger.Logger, cfg config.Conf, st *store.Store) Deps {
	return Deps{Log: log, Cfg: cfg, DB: st.SQL, Dialect: st.Dialect}
}
