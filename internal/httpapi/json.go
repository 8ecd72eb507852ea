package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/haushalt/ledger/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }

// writeStoreErr maps store sentinels onto HTTP statuses and error codes.
func writeStoreErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not_found", "not_found")
	case errors.Is(err, errs.ErrCategoryInUse):
		writeErr(w, http.StatusConflict, err.Error(), "category_in_use")
	case errors.Is(err, errs.ErrDanglingReference):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "dangling_reference")
	case errors.Is(err, errs.ErrImport):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "import_error")
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "validation_error")
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "")
	}
}

// requireJSON ensures the request has Content-Type application/json (optionally
// with params). Writes 415 and returns false if not.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		writeErr(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported_media_type")
		return false
	}
	mime := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	if mime != "application/json" {
		writeErr(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "unsupported_media_type")
		return false
	}
	return true
}

// decodeJSON decodes a request body strictly, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return false
	}
	return true
}
