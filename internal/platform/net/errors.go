package net

import (
	"net/http"

	perr "convertis/internal/platform/errors"
)

// HTTPStatus maps a project error to http status; nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// ErrorBody builds the status and JSON body for err, stamped with reqID
func ErrorBody(err error, reqID string) (int, perr.Wire) {
	w := perr.WireFrom(err)
	w.RequestID = reqID
	return HTTPStatus(err), w
}
