package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/haleworth/riskintel/internal/services/auth"
)

// Agent credential headers. The primary header matches the agent platform;
// the alternate is kept for older clients.
const (
	AgentKeyHeader    = "x-agent-key"
	AgentKeyHeaderAlt = "x-agent-id"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// AgentKey extracts the agent credential from the request headers
func AgentKey(r *http.Request) string {
	if key := r.Header.Get(AgentKeyHeader); key != "" {
		return key
	}
	return r.Header.Get(AgentKeyHeaderAlt)
}

// RequireAgentKey validates the agent credential on the request. Returns the
// key and true when valid; writes a 401 response otherwise.
func RequireAgentKey(w http.ResponseWriter, r *http.Request, authService *auth.Service) (string, bool) {
	key := AgentKey(r)
	if err := authService.ValidateAgentKey(key); err != nil {
		WriteError(w, http.StatusUnauthorized, "Invalid or missing agent key")
		return "", false
	}
	return key, true
}

// PathSuffix returns the path segment after the given route prefix, e.g. the
// company id in /api/resources/financials/{company_id}.
func PathSuffix(r *http.Request, prefix string) string {
	return strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
}

// GetListParams extracts limit/offset query parameters with defaults
func GetListParams(r *http.Request, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
