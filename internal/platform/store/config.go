package store

import (
	"convertis/internal/platform/config"
)

// Config selects and configures the SQL backend
type Config struct {
	AppName string
	Driver  Dialect
	LogSQL  bool

	PG     PGConfig
	SQLite SQLiteConfig
}

// PGConfig configures postgres connectivity
type PGConfig struct {
	URL         string
	MaxConns    int32
	SlowQueryMs int
}

// SQLiteConfig configures the sqlite file
type SQLiteConfig struct {
	Path          string
	BusyTimeoutMs int
	SlowQueryMs   int
}

// ConfigFromEnv reads SERVICE_DB_* and, for the pg driver, SERVICE_PGSQL_*
func ConfigFromEnv(appName string) Config {
	root := config.New().Prefix("SERVICE_")
	db := root.Prefix("DB_")

	cfg := Config{
		AppName: appName,
		Driver:  Dialect(db.MayEnum("DRIVER", string(DialectSQLite), string(DialectSQLite), string(DialectPG))),
		LogSQL:  db.MayBool("LOG_SQL", false),
		SQLite: SQLiteConfig{
			Path:          db.MayString("SQLITE_PATH", "convertis.db"),
			BusyTimeoutMs: db.MayInt("SQLITE_BUSY_MS", 5000),
			SlowQueryMs:   db.MayInt("SLOW_MS", 200),
		},
	}
	if cfg.Driver == DialectPG {
		cfg.PG = pgFromEnv()
	}
	return cfg
}

// WithDriver switches the backend, reading SERVICE_PGSQL_* when moving to pg
func (c Config) WithDriver(d Dialect) Config {
	if d == DialectPG && c.PG.URL == "" {
		c.PG = pgFromEnv()
	}
	c.Driver = d
	return c
}

func pgFromEnv() PGConfig {
	root := config.New().Prefix("SERVICE_")
	pg := root.Prefix("PGSQL_")
	return PGConfig{
		URL:         pg.MustString("DBURL"),
		MaxConns:    int32(pg.MayInt("MAX_CONNS", 8)),
		SlowQueryMs: pg.MayInt("SLOW_MS", root.Prefix("DB_").MayInt("SLOW_MS", 200)),
	}
}
