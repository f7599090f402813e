// @title         Convertis API
// @version       1.0
// @description   Records and queries converted persons

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"convertis/internal/modkit/repokit"
	"convertis/internal/platform/config"
	"convertis/internal/platform/logger"
	phttp "convertis/internal/platform/net/http"
	"convertis/internal/platform/store"

	"convertis/internal/services/api"
	"convertis/internal/services/api/convertis/repo"
)

func main() {
	// .env first so LOG_* and SERVICE_* below see it; real env wins
	dotErr := config.LoadDotEnv()

	// bring up logging early
	l := logger.Get()
	if dotErr != nil {
		l.Warn().Err(dotErr).Msg("failed to read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, l); err != nil {
		l.Error().Err(err).Msg("convertis-api stopped")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, l *logger.Logger) error {
	apiCfg := config.New().Prefix("CORE_API_")

	// open the platform store (sqlite by default, pg when SERVICE_DB_DRIVER=pg)
	st, err := store.Open(ctx, store.ConfigFromEnv("convertis-api"), store.WithLogger(*l))
	if err != nil {
		return fmt.Errorf("store.Open: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when the backend is unreachable
	repokit.MustGuard(ctx, st)

	if err := repo.EnsureSchema(ctx, st.SQL, st.Dialect); err != nil {
		return err
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(srv.Router(), api.OptionsFromConfig(apiCfg, st))

	// serve until SIGINT / SIGTERM
	return srv.Run(ctx)
}
