// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"
	"net/url"
	"strconv"

	perr "convertis/internal/platform/errors"
	phttp "convertis/internal/platform/net/http"
	"convertis/internal/platform/net/http/bind"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error returns a response that maps an error to status and body
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no JSON body; returning a Response passes it through
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		return result(fn(r))
	})
}

// JSON decodes and validates a T body before calling fn; returning a Response passes it through
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return result(fn(r, in))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}

// Handle lets you directly adapt a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// Param returns a decoded path parameter
// chi matches on RawPath when the request carries one, so the value may still be escaped
func Param(r *http.Request, name string) string {
	v := phttp.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// ParamInt64 parses a path parameter; a non-numeric value is reported as not found
func ParamInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(phttp.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, perr.ErrNotFound
	}
	return v, nil
}
