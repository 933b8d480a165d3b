package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// fieldError is one entry in the validation error list.
type fieldError struct {
	Msg string `json:"msg"`
}

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeMessage sends a `{"msg": ...}` response. All non-validation errors
// (401, 404, 429, 500) use this shape.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// writeFieldErrors sends a 400 with the `{"errors":[{"msg":...},...]}`
// shape used for validation failures.
func writeFieldErrors(w http.ResponseWriter, msgs []string) {
	errs := make([]fieldError, len(msgs))
	for i, msg := range msgs {
		errs[i] = fieldError{Msg: msg}
	}
	writeJSON(w, http.StatusBadRequest, map[string][]fieldError{"errors": errs})
}

// writeServerError logs the unexpected error and sends a generic 500.
func writeServerError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	writeMessage(w, http.StatusInternalServerError, "an unexpected error occurred, please try again")
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
