// Package handlers provides the HTTP handlers for the pharmacy API. Each
// entity kind gets list/search/get/create/update/delete handlers; create
// and update validate every submitted field, aggregate the rejections
// into a per-field error map and block the whole submission when any
// field rejects, leaving prior state unchanged.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
)

// RespondWithJSON writes a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a single-message JSON error.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// fieldErrors accumulates per-field validation rejections, keyed by the
// submitted field name.
type fieldErrors map[string]string

// check records the validation result for one field. Only the first
// rejection per field is kept.
func (fe fieldErrors) check(field string, err error) {
	if err == nil {
		return
	}
	if _, seen := fe[field]; !seen {
		fe[field] = err.Error()
	}
}

func (fe fieldErrors) ok() bool {
	return len(fe) == 0
}

// respond writes the aggregated field errors as a 422, the submission
// rejection used by every create and update handler.
func (fe fieldErrors) respond(w http.ResponseWriter) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fe,
	})
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// urlID parses the {id} URL parameter as a UUID.
func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// notFoundOrError maps store.ErrNotFound to a 404 and anything else to a
// 500.
func notFoundOrError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		RespondWithError(w, http.StatusNotFound, what+" not found")
		return
	}
	logging.Error("Unexpected store error", "error", err)
	RespondWithError(w, http.StatusInternalServerError, "internal error")
}

// parseFormDate parses an optional dd/MM/yyyy form date. Empty input
// yields the zero time with no error; the caller's validator decides
// whether the field is required.
func parseFormDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("02/01/2006", s, time.Local)
}
