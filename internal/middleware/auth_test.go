package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projectboard/internal/auth"
	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/httputil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubVerifier accepts exactly one token
type stubVerifier struct {
	token   string
	session models.Session
}

func (v *stubVerifier) VerifyToken(token string) (*models.Session, error) {
	if token != v.token {
		return nil, domain.ErrUnauthorized
	}
	session := v.session
	return &session, nil
}

func (v *stubVerifier) Close() error { return nil }

// echoSession reports the session the middleware attached
func echoSession(w http.ResponseWriter, r *http.Request) {
	session, ok := httputil.GetSession(r)
	if !ok {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"anonymous": true})
		return
	}
	httputil.RespondJSON(w, http.StatusOK, session)
}

func TestSessionMiddleware(t *testing.T) {
	codec, err := auth.NewSessionCodec("middleware-test-secret-0123456789", time.Hour)
	require.NoError(t, err)
	token, _, err := codec.Issue(models.Session{Username: "ana", OwnerID: "user-1"})
	require.NoError(t, err)

	verifier := &stubVerifier{token: "idp-token", session: models.Session{Username: "bob", OwnerID: "idp-7"}}

	h := SessionMiddleware(SessionOptions{
		Codec:       codec,
		Verifier:    verifier,
		Logger:      discardLogger(),
		PublicPaths: []string{"/health"},
	})(http.HandlerFunc(echoSession))

	tests := []struct {
		name       string
		method     string
		path       string
		cookie     string
		bearer     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "session cookie",
			path:       "/api/dashboard",
			cookie:     token,
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"ana","ownerId":"user-1"}`,
		},
		{
			name:       "session token as bearer",
			path:       "/api/dashboard",
			bearer:     token,
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"ana","ownerId":"user-1"}`,
		},
		{
			name:       "identity provider bearer",
			path:       "/api/dashboard",
			bearer:     "idp-token",
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"bob","ownerId":"idp-7"}`,
		},
		{
			name:       "invalid cookie falls back to bearer",
			path:       "/api/dashboard",
			cookie:     "tampered",
			bearer:     "idp-token",
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"bob","ownerId":"idp-7"}`,
		},
		{
			name:       "no credentials",
			path:       "/api/dashboard",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid bearer",
			path:       "/api/dashboard",
			bearer:     "nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "public path without credentials",
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   `{"anonymous":true}`,
		},
		{
			name:       "public path still sees a session",
			path:       "/health",
			cookie:     token,
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"ana","ownerId":"user-1"}`,
		},
		{
			name:       "pre-flight passes",
			method:     http.MethodOptions,
			path:       "/api/dashboard",
			wantStatus: http.StatusOK,
			wantBody:   `{"anonymous":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestSessionMiddleware_WithoutVerifier(t *testing.T) {
	codec, err := auth.NewSessionCodec("middleware-test-secret-0123456789", time.Hour)
	require.NoError(t, err)

	h := SessionMiddleware(SessionOptions{Codec: codec, Logger: discardLogger()})(http.HandlerFunc(echoSession))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer something")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Bearer   abc  ", want: "abc", ok: true},
		{header: "Basic abc", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer ", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)

			got, ok := bearerToken(req)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
