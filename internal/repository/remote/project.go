package remote

import (
	"context"
	"net/http"
	"net/url"

	"projectboard/internal/domain/models"
	"projectboard/internal/domain/repositories"
)

// ProjectRepository implements repositories.ProjectRepository over the
// project API's REST endpoints.
type ProjectRepository struct {
	client *Client
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(client *Client) repositories.ProjectRepository {
	return &ProjectRepository{client: client}
}

// List retrieves all projects
// GET /projects
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.client.do(ctx, "list", http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Create submits a new project
// POST /projects
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	payload := *project
	payload.ID = ""

	var created models.Project
	if err := r.client.do(ctx, "create", http.MethodPost, "/projects", &payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a project
// PUT /projects/{id}
func (r *ProjectRepository) Update(ctx context.Context, id string, project *models.Project) (*models.Project, error) {
	// the path carries the id; the body never restates it in a possibly different JSON type
	payload := *project
	payload.ID = ""

	var updated models.Project
	if err := r.client.do(ctx, "update", http.MethodPut, projectPath(id), &payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a project
// DELETE /projects/{id}
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, "delete", http.MethodDelete, projectPath(id), nil, nil)
}

func projectPath(id string) string {
	return "/projects/" + url.PathEscape(id)
}
