package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError sends the uniform failure body. Every failure is HTTP 400 with
// {"error": message} regardless of cause, matching the API contract.
func respondError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// isJSON reports whether the request body is JSON. Endpoints also accept
// application/x-www-form-urlencoded, which browser form posts use.
func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
