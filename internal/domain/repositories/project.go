package repositories

import (
	"context"

	"projectboard/internal/domain/models"
)

// ProjectRepository is the service of record for projects.
// Every failure is reported as a *domain.UpstreamError.
type ProjectRepository interface {
	// List returns the full project collection in the repository's order
	List(ctx context.Context) ([]models.Project, error)

	// Create submits a project without an ID and returns the stored
	// representation, which carries the assigned ID
	Create(ctx context.Context, project *models.Project) (*models.Project, error)

	// Update replaces the project with the given ID and returns the stored representation
	Update(ctx context.Context, id string, project *models.Project) (*models.Project, error)

	// Delete removes the project with the given ID
	Delete(ctx context.Context, id string) error
}
