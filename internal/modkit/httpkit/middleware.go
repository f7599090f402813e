package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"convertis/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins defaults to any origin
	CORSOrigins []string
	// SlowRequest marks access log lines as warn; 0 disables
	SlowRequest time.Duration
	// Timeout bounds each request; default 30s
	Timeout time.Duration
}

// CommonStack returns the root middleware slice, mounted once on the server mux
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(timeout),
	}
}

// StripSlashes drops a trailing slash inside a module subrouter
// it stays out of CommonStack because root level stripping loops the docs and pprof redirects
func StripSlashes() func(http.Handler) http.Handler { return middleware.StripSlashes() }
