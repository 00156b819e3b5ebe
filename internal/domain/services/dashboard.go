package services

import (
	"context"

	"projectboard/internal/domain/models"
)

// CreateProjectRequest holds the fields a user enters for a new project.
// ID, owner and timestamps are filled in by the store.
type CreateProjectRequest struct {
	ClientName  string        `json:"clientName"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
}

// UpdateProjectRequest is a partial update; nil fields are left unchanged.
type UpdateProjectRequest struct {
	ClientName  *string        `json:"clientName,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *models.Status `json:"status,omitempty"`
}

// ProjectListStore mirrors the project repository for one user and derives
// the filtered view shown on the dashboard.
type ProjectListStore interface {
	// Load replaces the local collection with the repository's
	Load(ctx context.Context) error

	// SetFilter updates one filter field and recomputes the view
	SetFilter(field models.FilterField, value string) error

	// ResetFilters clears every filter field
	ResetFilters()

	// Create stamps and submits a new project, then appends the stored representation
	Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// Update submits a partial update for a locally known project
	Update(ctx context.Context, id string, req *UpdateProjectRequest) (*models.Project, error)

	// Remove deletes a locally known project
	Remove(ctx context.Context, id string) error

	// Snapshot returns a copy of the current state
	Snapshot() models.DashboardView
}

// StoreProvider hands out the ProjectListStore of a session.
type StoreProvider interface {
	// StoreFor returns the session's store, creating and loading it on first use
	StoreFor(ctx context.Context, session models.Session) ProjectListStore

	// FreshStoreFor is StoreFor, reloading an existing store whose data has gone stale
	FreshStoreFor(ctx context.Context, session models.Session) ProjectListStore

	// Drop forgets the session's store
	Drop(session models.Session)
}
