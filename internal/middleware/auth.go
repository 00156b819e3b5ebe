package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"projectboard/internal/auth"
	"projectboard/internal/domain/models"
	"projectboard/internal/httputil"
)

// SessionCookieName is the cookie holding the signed session token
const SessionCookieName = "projectboard_session"

// SessionOptions configures SessionMiddleware
type SessionOptions struct {
	Codec    auth.SessionCodec
	Verifier auth.TokenVerifier // optional
	Logger   *slog.Logger
	// PublicPaths are served without a session. A valid session is still
	// attached when one is present.
	PublicPaths []string
}

// SessionMiddleware resolves the caller's session from the session cookie or
// an Authorization bearer token and stores it in the request context.
// Requests to non-public paths without a valid session get 401.
func SessionMiddleware(opts SessionOptions) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(opts.PublicPaths))
	for _, p := range opts.PublicPaths {
		public[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// CORS pre-flight never carries credentials
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			session, ok := resolveSession(r, opts)
			if ok {
				r = httputil.WithSession(r, *session)
				next.ServeHTTP(w, r)
				return
			}

			if _, isPublic := public[r.URL.Path]; isPublic {
				next.ServeHTTP(w, r)
				return
			}

			opts.Logger.Debug("request without valid session",
				"path", r.URL.Path,
				"method", r.Method,
			)
			httputil.RespondError(w, http.StatusUnauthorized, "login required")
		})
	}
}

func resolveSession(r *http.Request, opts SessionOptions) (*models.Session, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if session, err := opts.Codec.Verify(cookie.Value); err == nil {
			return session, true
		}
	}

	token, ok := bearerToken(r)
	if !ok {
		return nil, false
	}

	if session, err := opts.Codec.Verify(token); err == nil {
		return session, true
	}
	if opts.Verifier != nil {
		if session, err := opts.Verifier.VerifyToken(token); err == nil {
			return session, true
		}
	}
	return nil, false
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
