// Package web serves the embedded single page UI
package web

import (
	"embed"
	"net/http"

	phttp "convertis/internal/platform/net/http"
)

//go:embed static/index.html
var static embed.FS

// index is read once; the embedded file cannot change at runtime
var index = func() []byte {
	b, err := static.ReadFile("static/index.html")
	if err != nil {
		panic("web: embedded index.html missing: " + err.Error())
	}
	return b
}()

// Mount serves the UI at / when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/", serveIndex)
	r.Head("/", serveIndex)
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(index)
	}
}
