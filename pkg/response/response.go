// Package response writes HTTP responses. Entities go out as plain JSON
// values (arrays and objects, no envelope); errors go out as {"error": ...}
// with the status code derived from the storeerr taxonomy.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Text writes a plain-text body with the given status.
func Text(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(s + "\n")) //nolint:errcheck
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// Err maps a repository error to a status code and writes it. The mapping
// lives here and nowhere else: repositories return taxonomy errors and know
// nothing about HTTP.
func Err(w http.ResponseWriter, err error) {
	var ve *storeerr.ValidationError
	if errors.As(err, &ve) {
		JSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Fields: ve.Fields})
		return
	}

	switch {
	case errors.Is(err, storeerr.ErrNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, storeerr.ErrDuplicate):
		JSON(w, http.StatusConflict, errorBody{Error: "already exists"})
	case errors.Is(err, storeerr.ErrForeignKey):
		JSON(w, http.StatusConflict, errorBody{Error: "constraint violation"})
	case errors.Is(err, storeerr.ErrTimeout):
		JSON(w, http.StatusGatewayTimeout, errorBody{Error: "database timeout"})
	default:
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
