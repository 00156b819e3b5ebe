package httputil

import (
	"context"
	"net/http"

	"projectboard/internal/domain/models"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-Id"

// Context key type to avoid collisions
type contextKey string

const (
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "requestID"
)

// WithSession adds the session to the request context
func WithSession(r *http.Request, session models.Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionKey, session)
	return r.WithContext(ctx)
}

// GetSession retrieves the session from the request context
func GetSession(r *http.Request) (models.Session, bool) {
	session, ok := r.Context().Value(sessionKey).(models.Session)
	return session, ok
}

// WithRequestID stores the request id in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request id from ctx, returns empty string if not found
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}
