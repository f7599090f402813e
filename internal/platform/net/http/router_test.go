package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"convertis/internal/platform/config"
	perr "convertis/internal/platform/errors"
	phttp "convertis/internal/platform/net/http"
	"convertis/internal/platform/net/http/bind"

	"github.com/go-chi/chi/v5"
)

type createIn struct {
	Nom string `json:"nom" validate:"required"`
}

func TestAdaptChi_RoutesAndParams(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/convertis", func(sr phttp.Router) {
		sr.Get("/{id}", phttp.Handle(func(req *http.Request) phttp.Response {
			id := phttp.URLParam(req, "id")
			if _, err := strconv.ParseInt(id, 10, 64); err != nil {
				return phttp.Error(perr.ErrNotFound)
			}
			return phttp.OK(map[string]string{"id": id})
		}))
		sr.Post("/", phttp.Handle(func(req *http.Request) phttp.Response {
			in, err := bind.ParseJSON[createIn](req)
			if err != nil {
				return phttp.Error(err)
			}
			return phttp.Created(map[string]string{"nom": in.Nom})
		}))
		sr.Delete("/{id}", phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() }))
	})
	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/convertis/42")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if res.StatusCode != 200 || !strings.Contains(string(body), `"id":"42"`) {
		t.Fatalf("GET = %d %s", res.StatusCode, body)
	}

	res, err = http.Get(srv.URL + "/convertis/abc")
	if err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("non-numeric id status = %d", res.StatusCode)
	}

	res, err = http.Post(srv.URL+"/convertis/", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST {} status = %d", res.StatusCode)
	}
}

func TestMountProfiler(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	phttp.MountProfiler(r, "/debug", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	phttp.MountProfiler(r, "/debug", true)
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enabled profiler status = %d", rec.Code)
	}
}

func TestServer_DefaultsAndShutdown(t *testing.T) {
	s := phttp.NewServer(config.New().Prefix("HTTPTEST_"))
	if s.Addr() != phttp.DefaultAddr {
		t.Fatalf("Addr = %q", s.Addr())
	}

	t.Setenv("HTTPTEST_API_PORT", "127.0.0.1:0")
	s = phttp.NewServer(config.New().Prefix("HTTPTEST_"), func(m *chi.Mux) {
		m.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
	})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Body.String() != "pong" {
		t.Fatalf("body = %q", rec.Body.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
