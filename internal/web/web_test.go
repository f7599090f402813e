package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "convertis/internal/platform/net/http"
	"convertis/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMount(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), true)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	testkit.MustContain(t, body, "/convertis/unique-values")
	testkit.MustContain(t, body, "REFRESH_MS = 30000")
	testkit.MustNotContain(t, body, "render.com")

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("HEAD", "/", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("HEAD / = %d len=%d", rec.Code, rec.Body.Len())
	}
}

func TestMount_Disabled(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled GET / = %d", rec.Code)
	}
}
