package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "convertis/internal/platform/errors"
	"convertis/internal/platform/logger"
	phttp "convertis/internal/platform/net/http"
	pnet "convertis/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, body := pnet.ErrorBody(perr.PanicErrf("panic: %v", v), reqID)
			phttp.JSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
