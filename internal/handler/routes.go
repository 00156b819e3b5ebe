package handler

import "net/http"

// Handlers groups the handlers mounted by NewRouter
type Handlers struct {
	Accounts  *AccountHandler
	Dashboard *DashboardHandler
	Projects  *ProjectHandler
	Statuses  *StatusHandler
}

// PublicPaths are reachable without a session
var PublicPaths = []string{
	"/health",
	"/api/register",
	"/api/login",
	"/api/logout",
	"/api/statuses",
}

// NewRouter registers every route (Go 1.22+ method patterns)
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", HealthCheck)

	// Account routes
	mux.HandleFunc("POST /api/register", h.Accounts.Register)
	mux.HandleFunc("POST /api/login", h.Accounts.Login)
	mux.HandleFunc("POST /api/logout", h.Accounts.Logout)

	mux.HandleFunc("GET /api/statuses", h.Statuses.ListStatuses)

	// Dashboard routes
	mux.HandleFunc("GET /api/dashboard", h.Dashboard.GetDashboard)
	mux.HandleFunc("POST /api/dashboard/reload", h.Dashboard.Reload)
	mux.HandleFunc("PATCH /api/dashboard/filters", h.Dashboard.SetFilter)
	mux.HandleFunc("DELETE /api/dashboard/filters", h.Dashboard.ResetFilters)

	// Project routes
	mux.HandleFunc("POST /api/projects", h.Projects.CreateProject)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Projects.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.DeleteProject)

	return mux
}
