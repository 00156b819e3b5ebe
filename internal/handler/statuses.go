package handler

import (
	"net/http"

	"projectboard/internal/httputil"
	"projectboard/internal/statuses"
)

// StatusHandler serves the workflow stage catalog
type StatusHandler struct {
	catalog *statuses.Catalog
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(catalog *statuses.Catalog) *StatusHandler {
	return &StatusHandler{catalog: catalog}
}

// ListStatuses returns every workflow stage with its label and color
// GET /api/statuses
func (h *StatusHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.catalog.All())
}

// HealthCheck reports liveness
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "projectboard",
	})
}
