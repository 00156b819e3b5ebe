package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/httputil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake API saw
type recordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Body      map[string]interface{}
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{
		Method:    r.Method,
		Path:      r.URL.EscapedPath(),
		RequestID: r.Header.Get(httputil.RequestIDHeader),
	}
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		_ = json.Unmarshal(data, &rec.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, api http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:4000", "://broken"} {
		_, err := NewClient(ClientConfig{BaseURL: raw})
		assert.Error(t, err, raw)
	}
}

func TestProjectRepository_List(t *testing.T) {
	api := &fakeAPI{body: `[
		{"id":"1","clientName":"Acme","description":"","status":"ONBOARDING","createdAt":"2024-01-01","updatedAt":"2024-01-01","ownerId":"u1"},
		{"id":"2","clientName":"Beta","description":"x","status":"COMPLETED","createdAt":"2024-02-01","updatedAt":"2024-02-02","ownerId":"u1"}
	]`}
	repo := NewProjectRepository(newTestClient(t, api))

	ctx := httputil.WithRequestID(context.Background(), "req-123")
	projects, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Acme", projects[0].ClientName)
	assert.Equal(t, models.StatusCompleted, projects[1].Status)

	req := api.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/projects", req.Path)
	assert.Equal(t, "req-123", req.RequestID)
}

func TestProjectRepository_ListNull(t *testing.T) {
	repo := NewProjectRepository(newTestClient(t, &fakeAPI{body: `null`}))

	projects, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepository_Create(t *testing.T) {
	api := &fakeAPI{
		status: http.StatusCreated,
		body:   `{"id":"42","clientName":"Acme","description":"d","status":"DESIGN","createdAt":"2024-05-01T12:30:00.000Z","updatedAt":"2024-05-01T12:30:00.000Z","ownerId":"u1"}`,
	}
	repo := NewProjectRepository(newTestClient(t, api))

	created, err := repo.Create(context.Background(), &models.Project{
		ID:          "ignored",
		ClientName:  "Acme",
		Description: "d",
		Status:      models.StatusDesign,
		CreatedAt:   "2024-05-01T12:30:00.000Z",
		UpdatedAt:   "2024-05-01T12:30:00.000Z",
		OwnerID:     "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), created.ID)

	req := api.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/projects", req.Path)
	assert.NotContains(t, req.Body, "id")
	assert.Equal(t, "u1", req.Body["ownerId"])
	assert.Equal(t, "DESIGN", req.Body["status"])
}

func TestProjectRepository_Update(t *testing.T) {
	api := &fakeAPI{body: `{"id":"a/b","clientName":"Acme","status":"COPY"}`}
	repo := NewProjectRepository(newTestClient(t, api))

	updated, err := repo.Update(context.Background(), "a/b", &models.Project{ID: "a/b", ClientName: "Acme", Status: models.StatusCopy})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCopy, updated.Status)

	req := api.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/projects/a%2Fb", req.Path)
	assert.NotContains(t, req.Body, "id")
	assert.Equal(t, "Acme", req.Body["clientName"])
}

func TestProjectRepository_NumericIDs(t *testing.T) {
	api := &fakeAPI{body: `[
		{"id":1,"clientName":"Acme","status":"ONBOARDING","ownerId":"u1"},
		{"id":20000000000000001,"clientName":"Beta","status":"COMPLETED","ownerId":"u1"},
		{"id":"c-3","clientName":"Gamma","status":"DESIGN","ownerId":"u1"}
	]`}
	repo := NewProjectRepository(newTestClient(t, api))

	projects, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, models.ID("1"), projects[0].ID)
	assert.Equal(t, models.ID("20000000000000001"), projects[1].ID)
	assert.Equal(t, models.ID("c-3"), projects[2].ID)

	// a numeric id round-trips through the URL path
	api.mu.Lock()
	api.body = `{"id":1,"clientName":"Acme","status":"COPY"}`
	api.mu.Unlock()
	updated, err := repo.Update(context.Background(), projects[0].ID.String(), &projects[0])

	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), updated.ID)
	assert.Equal(t, "/projects/1", api.last().Path)
}

func TestProjectRepository_InvalidID(t *testing.T) {
	api := &fakeAPI{body: `[{"id":true,"clientName":"Acme"}]`}
	repo := NewProjectRepository(newTestClient(t, api))

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestProjectRepository_Delete(t *testing.T) {
	api := &fakeAPI{status: http.StatusNoContent}
	repo := NewProjectRepository(newTestClient(t, api))

	require.NoError(t, repo.Delete(context.Background(), "7"))

	req := api.last()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/projects/7", req.Path)
}

func TestProjectRepository_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		call       func(repo *ProjectRepository) error
		wantStatus int
	}{
		{
			name:       "server error on list",
			status:     http.StatusInternalServerError,
			body:       `{"error":"boom"}`,
			call:       func(r *ProjectRepository) error { _, err := r.List(context.Background()); return err },
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not found on update",
			status:     http.StatusNotFound,
			call:       func(r *ProjectRepository) error { _, err := r.Update(context.Background(), "1", &models.Project{}); return err },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad request on create",
			status:     http.StatusBadRequest,
			call:       func(r *ProjectRepository) error { _, err := r.Create(context.Background(), &models.Project{}); return err },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body on list",
			status:     http.StatusOK,
			body:       `{"not":"a list"}`,
			call:       func(r *ProjectRepository) error { _, err := r.List(context.Background()); return err },
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty body on create",
			status:     http.StatusOK,
			call:       func(r *ProjectRepository) error { _, err := r.Create(context.Background(), &models.Project{}); return err },
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{status: tt.status, body: tt.body}
			repo := NewProjectRepository(newTestClient(t, api)).(*ProjectRepository)

			err := tt.call(repo)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstream)
			assert.True(t, IsStatus(err, tt.wantStatus))
		})
	}
}

func TestProjectRepository_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(ClientConfig{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = NewProjectRepository(client).List(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, IsStatus(err, http.StatusOK))
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	api := &fakeAPI{body: `[]`}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{BaseURL: server.URL, RateLimit: 0.001, Burst: 1})
	require.NoError(t, err)
	repo := NewProjectRepository(client)

	_, err = repo.List(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = repo.List(ctx)

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, 1, api.count(), "second call must not reach the API")
}
