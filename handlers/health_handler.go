package handlers

import "net/http"

// HealthCheck handles GET /healthz
// Basic health check - always returns 200 if service is running
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
