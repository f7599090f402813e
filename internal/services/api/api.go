// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"convertis/internal/platform/config"
	"convertis/internal/platform/logger"
	phttp "convertis/internal/platform/net/http"
	"convertis/internal/platform/store"

	"convertis/internal/modkit"
	"convertis/internal/modkit/httpkit"
	"convertis/internal/modkit/swaggerkit"
	"convertis/internal/web"

	convertismod "convertis/internal/services/api/convertis/module"
	metamod "convertis/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableUI       bool
	CORSOrigins    []string
	SlowRequest    time.Duration
}

// OptionsFromConfig reads the CORE_API_ switches; cfg must already carry that prefix
func OptionsFromConfig(cfg config.Conf, st *store.Store) Options {
	return Options{
		Config:         cfg,
		Store:          st,
		Logger:         logger.Get(),
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableUI:       cfg.MayBool("UI", true),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", time.Second),
	}
}

// Mount installs the common stack and every module on r
// call it on a fresh router: chi rejects Use after routes exist
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}
	deps := modkit.DepsFrom(*log, opt.Config, opt.Store)

	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.SlowRequest,
	})...)

	// the record api keeps its historical root paths
	mods := []modkit.Module{
		convertismod.New(deps),
	}
	for _, m := range mods {
		m.MountRoutes(r)
	}

	httpkit.MountAPIV1(r, []func(http.Handler) http.Handler{httpkit.StripSlashes()}, func(api httpkit.Router) {
		metamod.New(deps).MountRoutes(api)
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	web.Mount(r, opt.EnableUI)

	log.Info().
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Bool("ui", opt.EnableUI).
		Str("db", string(deps.Dialect)).
		Msg("api mounted")
}
