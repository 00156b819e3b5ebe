package handler

import (
	"log/slog"
	"net/http"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/services"
	"projectboard/internal/httputil"
)

// ProjectHandler handles project create, edit and delete
type ProjectHandler struct {
	stores services.StoreProvider
	logger *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(stores services.StoreProvider, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		stores: stores,
		logger: logger,
	}
}

// updateProjectBody distinguishes absent fields from explicit nulls
type updateProjectBody struct {
	ClientName  httputil.OptionalString `json:"clientName"`
	Description httputil.OptionalString `json:"description"`
	Status      httputil.OptionalString `json:"status"`
}

// toRequest maps the body to a partial update. A null description clears
// it; clientName and status cannot be null.
func (b *updateProjectBody) toRequest() (*services.UpdateProjectRequest, error) {
	req := &services.UpdateProjectRequest{}

	if b.ClientName.Present {
		if b.ClientName.Value == nil {
			return nil, &domain.ValidationError{Message: "clientName cannot be null"}
		}
		req.ClientName = b.ClientName.Value
	}

	if b.Description.Present {
		description := ""
		if b.Description.Value != nil {
			description = *b.Description.Value
		}
		req.Description = &description
	}

	if b.Status.Present {
		if b.Status.Value == nil {
			return nil, &domain.ValidationError{Message: "status cannot be null"}
		}
		status := models.Status(*b.Status.Value)
		req.Status = &status
	}

	return req, nil
}

// CreateProject creates a new project
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := store.Create(r.Context(), &req)
	if err != nil {
		logFailure(h.logger, r, "create project request failed", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// UpdateProject applies a partial update
// PATCH /api/projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	var body updateProjectBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := body.toRequest()
	if err != nil {
		logFailure(h.logger, r, "update project request rejected", err, "project_id", id)
		handleError(w, err)
		return
	}

	project, err := store.Update(r.Context(), id, req)
	if err != nil {
		logFailure(h.logger, r, "update project request failed", err, "project_id", id)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project
// DELETE /api/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFor(w, r, h.stores)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	if err := store.Remove(r.Context(), id); err != nil {
		logFailure(h.logger, r, "delete project request failed", err, "project_id", id)
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
