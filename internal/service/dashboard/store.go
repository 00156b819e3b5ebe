package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"projectboard/internal/config"
	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/repositories"
	"projectboard/internal/domain/services"
)

// Messages shown in the dashboard's error banner.
const (
	MsgLoadFailed      = "Failed to load projects. Please try again later."
	MsgCreateFailed    = "An error occurred while creating the project. Please try again."
	MsgUpdateFailed    = "An error occurred while updating the project. Please try again."
	MsgDeleteFailed    = "An error occurred while deleting the project. Please try again."
	MsgMissingSession  = "User ID not found. Please log in again."
	MsgProjectNotFound = "This project no longer exists. Reload the list and try again."
)

// timestampLayout matches the API's ISO 8601 timestamps, e.g. 2024-01-01T10:00:00.000Z
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for the timestamps stamped on create and update.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the ProjectListStore of one session.
//
// The mutex guards local state only and is never held across a repository
// call. Each operation applies its own result once its call returns, so
// concurrent operations resolve as last writer wins.
type Store struct {
	repo    repositories.ProjectRepository
	session models.Session
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	all      []models.Project
	filtered []models.Project
	filters  models.FilterCriteria
	status   models.LoadStatus
	notice   string
	loadedAt time.Time
}

var _ services.ProjectListStore = (*Store)(nil)

// NewStore creates an empty store in the loading state. The session is
// fixed for the lifetime of the store.
func NewStore(repo repositories.ProjectRepository, session models.Session, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		session:  session,
		logger:   logger.With("owner_id", session.OwnerID, "username", session.Username),
		now:      time.Now,
		all:      []models.Project{},
		filtered: []models.Project{},
		status:   models.LoadStatus{State: models.LoadStateLoading},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the local collection with the repository's. On failure the
// collection is left as it was and the store enters the error state.
func (s *Store) Load(ctx context.Context) error {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("project list failed", "error", err)

		s.mu.Lock()
		s.status = models.LoadStatus{State: models.LoadStateError, Message: MsgLoadFailed}
		s.mu.Unlock()

		return &domain.OperationError{Message: MsgLoadFailed, Err: err}
	}

	unique := s.uniqueByID(projects)

	s.mu.Lock()
	s.all = unique
	s.status = models.LoadStatus{State: models.LoadStateReady}
	s.notice = ""
	s.loadedAt = s.now()
	s.recomputeLocked()
	s.mu.Unlock()

	s.logger.Debug("projects loaded", "count", len(unique))
	return nil
}

// LoadedAt returns the time of the last successful Load, zero if there was none
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// SetFilter updates one filter field and recomputes the view. Values are not
// validated beyond their length; a malformed date simply does not filter.
func (s *Store) SetFilter(field models.FilterField, value string) error {
	if len(value) > config.MaxFilterValueLength {
		return fmt.Errorf("%w: filter value exceeds %d characters", domain.ErrValidation, config.MaxFilterValueLength)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case models.FilterStatus:
		s.filters.Status = value
	case models.FilterClientName:
		s.filters.ClientName = value
	case models.FilterStartDate:
		s.filters.StartDate = value
	case models.FilterEndDate:
		s.filters.EndDate = value
	default:
		return fmt.Errorf("%w: unknown filter field %q", domain.ErrValidation, field)
	}

	s.recomputeLocked()
	return nil
}

// ResetFilters clears every filter field
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = models.FilterCriteria{}
	s.recomputeLocked()
}

// Create stamps the request with the session owner and the current time and
// submits it. The repository's representation is authoritative and is what
// gets appended. An empty status defaults to ONBOARDING.
func (s *Store) Create(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if s.session.OwnerID == "" {
		s.setNotice(MsgMissingSession)
		return nil, &domain.OperationError{Message: MsgMissingSession, Err: domain.ErrMissingSession}
	}

	input := *req
	if input.Status == "" {
		input.Status = models.StatusOnboarding
	}
	if err := validateCreateRequest(&input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	now := s.timestamp()
	candidate := &models.Project{
		ClientName:  strings.TrimSpace(input.ClientName),
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     s.session.OwnerID,
	}

	created, err := s.repo.Create(ctx, candidate)
	if err == nil && (created == nil || created.ID == "") {
		err = &domain.UpstreamError{Op: "create", Err: errors.New("response carried no project id")}
	}
	if err != nil {
		s.logger.Warn("project create failed", "client_name", candidate.ClientName, "error", err)
		s.setNotice(MsgCreateFailed)
		return nil, &domain.OperationError{Message: MsgCreateFailed, Err: err}
	}

	s.mu.Lock()
	s.all = upsert(s.all, *created)
	s.notice = ""
	s.recomputeLocked()
	s.mu.Unlock()

	s.logger.Info("project created", "id", created.ID, "status", created.Status)

	result := *created
	return &result, nil
}

// Update applies req to the local copy of the project, refreshes updatedAt
// and submits the result. The repository's representation replaces the
// local entry.
func (s *Store) Update(ctx context.Context, id string, req *services.UpdateProjectRequest) (*models.Project, error) {
	s.mu.RLock()
	current, ok := s.findLocked(id)
	s.mu.RUnlock()
	if !ok {
		s.setNotice(MsgProjectNotFound)
		return nil, &domain.OperationError{
			Message: MsgProjectNotFound,
			Err:     &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", id)},
		}
	}

	if err := validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	patched := current
	if req.ClientName != nil {
		patched.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.Description != nil {
		patched.Description = *req.Description
	}
	if req.Status != nil {
		patched.Status = *req.Status
	}
	patched.UpdatedAt = s.timestamp()

	updated, err := s.repo.Update(ctx, id, &patched)
	if err == nil && updated == nil {
		err = &domain.UpstreamError{Op: "update", Err: errors.New("empty response")}
	}
	if err != nil {
		s.logger.Warn("project update failed", "id", id, "error", err)
		s.setNotice(MsgUpdateFailed)
		return nil, &domain.OperationError{Message: MsgUpdateFailed, Err: err}
	}
	if updated.ID == "" {
		updated.ID = models.ID(id)
	}

	s.mu.Lock()
	s.all = replace(s.all, id, *updated)
	s.notice = ""
	s.recomputeLocked()
	s.mu.Unlock()

	s.logger.Info("project updated", "id", id, "status", updated.Status)

	result := *updated
	return &result, nil
}

// Remove deletes a locally known project. On failure the collection is left unchanged.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.RLock()
	_, ok := s.findLocked(id)
	s.mu.RUnlock()
	if !ok {
		s.setNotice(MsgProjectNotFound)
		return &domain.OperationError{
			Message: MsgProjectNotFound,
			Err:     &domain.NotFoundError{Message: fmt.Sprintf("project %s not found", id)},
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("project delete failed", "id", id, "error", err)
		s.setNotice(MsgDeleteFailed)
		return &domain.OperationError{Message: MsgDeleteFailed, Err: err}
	}

	s.mu.Lock()
	s.all = without(s.all, id)
	s.notice = ""
	s.recomputeLocked()
	s.mu.Unlock()

	s.logger.Info("project deleted", "id", id)
	return nil
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() models.DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, len(s.filtered))
	copy(projects, s.filtered)

	message := s.notice
	if message == "" && s.status.State == models.LoadStateError {
		message = s.status.Message
	}

	return models.DashboardView{
		Username: s.session.Username,
		Load:     s.status,
		Error:    message,
		Filters:  s.filters,
		Projects: projects,
		Total:    len(s.all),
	}
}

// recomputeLocked derives the filtered view; callers hold the write lock
func (s *Store) recomputeLocked() {
	s.filtered = Recompute(s.all, s.filters)
}

func (s *Store) findLocked(id string) (models.Project, bool) {
	for _, project := range s.all {
		if string(project.ID) == id {
			return project, true
		}
	}
	return models.Project{}, false
}

func (s *Store) setNotice(message string) {
	s.mu.Lock()
	s.notice = message
	s.mu.Unlock()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

// uniqueByID keeps the first occurrence of every id, preserving order
func (s *Store) uniqueByID(projects []models.Project) []models.Project {
	seen := make(map[models.ID]struct{}, len(projects))
	unique := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if _, dup := seen[project.ID]; dup {
			s.logger.Warn("duplicate project id in list response", "id", project.ID)
			continue
		}
		seen[project.ID] = struct{}{}
		unique = append(unique, project)
	}
	return unique
}

// upsert replaces the entry with the same id or appends a new one
func upsert(projects []models.Project, project models.Project) []models.Project {
	for i := range projects {
		if projects[i].ID == project.ID {
			next := make([]models.Project, len(projects))
			copy(next, projects)
			next[i] = project
			return next
		}
	}
	next := make([]models.Project, len(projects), len(projects)+1)
	copy(next, projects)
	return append(next, project)
}

// replace swaps the entry with the given id. A project removed while the
// update was in flight is not brought back.
func replace(projects []models.Project, id string, project models.Project) []models.Project {
	next := make([]models.Project, 0, len(projects))
	for _, existing := range projects {
		if string(existing.ID) == id {
			next = append(next, project)
			continue
		}
		next = append(next, existing)
	}
	return next
}

func without(projects []models.Project, id string) []models.Project {
	next := make([]models.Project, 0, len(projects))
	for _, existing := range projects {
		if string(existing.ID) != id {
			next = append(next, existing)
		}
	}
	return next
}
