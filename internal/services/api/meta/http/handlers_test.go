package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "convertis/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), d)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, rec.Body.String())
	}
	return rec.Code
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		db     any
		status string
		check  string
	}{
		{"ok", pinger{}, "ok", "ok"},
		{"fail", pinger{err: errors.New("database is locked")}, "fail", "fail"},
		{"skipped", nil, "degraded", "skipped"},
		{"unknown", struct{}{}, "degraded", "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ReadyResponse
			code := serve(t, Deps{ServiceName: "convertis-api", DB: tc.db, Driver: "sqlite"}, "/ready", &got)
			if code != stdhttp.StatusOK || got.Status != tc.status || len(got.Checks) != 1 {
				t.Fatalf("ready = %d %+v", code, got)
			}
			if c := got.Checks[0]; c.Name != "sqlite" || c.Status != tc.check {
				t.Fatalf("check = %+v", c)
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	d := Deps{ServiceName: "convertis-api", StartedAt: started}

	var h HealthResponse
	if serve(t, d, "/health", &h); !h.OK || h.Service != "convertis-api" {
		t.Fatalf("health = %+v", h)
	}

	var s ServiceResponse
	if serve(t, d, "/service", &s); s.Uptime < 90 || s.Name != "convertis-api" {
		t.Fatalf("service = %+v", s)
	}

	var v map[string]string
	if serve(t, d, "/version", &v); v["service"] != "convertis-api" {
		t.Fatalf("version = %+v", v)
	}
}
