package server

import (
	"encoding/json"
	"net/http"
)

// Code is a machine-readable error code returned in JSON error bodies.
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: request validation failures
//   - NOT_FOUND_*: missing resources
//   - INTERNAL_*: unexpected server-side errors
type Code string

const (
	// ErrCodeInvalidBody covers unreadable or malformed JSON request bodies.
	ErrCodeInvalidBody Code = "INVALID_BODY"

	// ErrCodeInvalidGraph covers adjacency literals that do not describe a
	// valid directed graph (non-square, self loops, non-binary entries).
	ErrCodeInvalidGraph Code = "INVALID_GRAPH"

	// ErrCodeInvalidLabels covers label lists whose length does not match
	// the node count.
	ErrCodeInvalidLabels Code = "INVALID_LABELS"

	// ErrCodeNotFound covers unknown example names and report IDs.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeInternal covers everything the server did not anticipate.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// apiError is the JSON error body every failing endpoint returns.
type apiError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// writeError sends a JSON error response with the given status.
func writeError(w http.ResponseWriter, status int, code Code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiError{Code: code, Message: message})
}

// writeJSON sends a JSON success response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
