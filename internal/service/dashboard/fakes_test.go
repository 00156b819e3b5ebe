package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
)

// fakeRepository is an in-memory project API
type fakeRepository struct {
	mu       sync.Mutex
	projects []models.Project
	nextID   int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// stampCreated overrides the timestamps the store sends, like a server clock
	stampCreated string

	calls    map[string]int
	received []models.Project
}

func newFakeRepository(projects ...models.Project) *fakeRepository {
	return &fakeRepository{
		projects: append([]models.Project(nil), projects...),
		nextID:   len(projects) + 1,
		calls:    make(map[string]int),
	}
}

func (f *fakeRepository) List(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Project{}, f.projects...), nil
}

func (f *fakeRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	f.received = append(f.received, *project)
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *project
	created.ID = models.ID(fmt.Sprintf("p-%d", f.nextID))
	f.nextID++
	if f.stampCreated != "" {
		created.CreatedAt = f.stampCreated
		created.UpdatedAt = f.stampCreated
	}
	f.projects = append(f.projects, created)
	return &created, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, project *models.Project) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	f.received = append(f.received, *project)
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	for i := range f.projects {
		if f.projects[i].ID.String() == id {
			updated := *project
			updated.ID = models.ID(id)
			f.projects[i] = updated
			return &updated, nil
		}
	}
	return nil, &domain.UpstreamError{Op: "update", Status: http.StatusNotFound}
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if f.deleteErr != nil {
		return f.deleteErr
	}

	for i := range f.projects {
		if f.projects[i].ID.String() == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return &domain.UpstreamError{Op: "delete", Status: http.StatusNotFound}
}

func (f *fakeRepository) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRepository) lastReceived() models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.received[len(f.received)-1]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	}
}

var testSession = models.Session{Username: "ana", OwnerID: "user-1"}

func errUpstream(op string) error {
	return &domain.UpstreamError{Op: op, Status: http.StatusInternalServerError}
}

// manualClock only moves when told to
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (f *fakeRepository) add(project models.Project) {
	f.mu.Lock()
	f.projects = append(f.projects, project)
	f.mu.Unlock()
}
