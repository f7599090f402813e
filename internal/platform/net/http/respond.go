// Package http provides the chi-backed router seam and JSON response helpers.
// Success bodies are written as-is; errors are written as perr.Wire
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"convertis/internal/platform/logger"
	pnet "convertis/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// RespondError maps err to a status and {"error": ...} body and writes it.
// 5xx causes are logged since the client only sees a generic message
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.ErrorBody(err, pnet.RequestID(r.Context()))
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("request failed")
	}
	JSON(w, status, body)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and body
func Error(err error) Response { return Response{Body: err} }

// URLParam returns the named path parameter of the matched route
func URLParam(r *stdhttp.Request, name string) string { return chi.URLParam(r, name) }
