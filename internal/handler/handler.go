package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the standard error body: {"error": <message>} plus any
// extra diagnostic fields ("fields", "detail").
func writeError(w http.ResponseWriter, status int, message string, extra map[string]any) {
	payload := map[string]any{"error": message}
	for k, v := range extra {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}
