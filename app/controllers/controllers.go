// Package controllers contains the HTTP handlers. Controllers only decode
// requests, call a repository and encode the result; all persistence rules
// live below them.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID parses a positive integer route parameter.
func pathID(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
