package handler

import (
	"net/http"
	"time"

	"projectboard/internal/domain/services"
	"projectboard/internal/httputil"
	"projectboard/internal/middleware"
)

// storeFor returns the caller's dashboard store. It writes a 401 and returns
// false when the request carries no session.
func storeFor(w http.ResponseWriter, r *http.Request, stores services.StoreProvider) (services.ProjectListStore, bool) {
	session, ok := httputil.GetSession(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "login required")
		return nil, false
	}
	return stores.StoreFor(r.Context(), session), true
}

func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
