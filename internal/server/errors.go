package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	ErrMissingKey   = errors.New("server: key is required")
	ErrInvalidCount = errors.New("server: count must be an integer")
	ErrInvalidParam = errors.New("server: parameter must be name:value")
	ErrInvalidBody  = errors.New("server: invalid request body")
	ErrNoLocale     = errors.New("server: no locale requested")
	ErrInternal     = errors.New("server: internal error")
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
