package handler

import (
	"log/slog"
	"net/http"

	"projectboard/internal/domain/models"
	"projectboard/internal/domain/services"
	"projectboard/internal/httputil"
)

// DashboardHandler serves the dashboard view and its filters
type DashboardHandler struct {
	stores services.StoreProvider
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(stores services.StoreProvider, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		stores: stores,
		logger: logger,
	}
}

// SetFilterRequest updates one filter field
type SetFilterRequest struct {
	Field models.FilterField `json:"field"`
	Value string             `json:"value"`
}

// GetDashboard returns the caller's dashboard view
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := httputil.GetSession(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "login required")
		return
	}

	// the view reflects a failed reload through its error banner
	store := h.stores.FreshStoreFor(r.Context(), session)

	httputil.RespondJSON(w, http.StatusOK, store.Snapshot())
}

// Reload fetches the project list again
// POST /api/dashboard/reload
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	if err := store.Load(r.Context()); err != nil {
		logFailure(h.logger, r, "reload request failed", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, store.Snapshot())
}

// SetFilter updates one filter field
// PATCH /api/dashboard/filters
func (h *DashboardHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	var req SetFilterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := store.SetFilter(req.Field, req.Value); err != nil {
		logFailure(h.logger, r, "set filter request rejected", err, "field", req.Field)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, store.Snapshot())
}

// ResetFilters clears all filters
// DELETE /api/dashboard/filters
func (h *DashboardHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	store.ResetFilters()
	httputil.RespondJSON(w, http.StatusOK, store.Snapshot())
}
