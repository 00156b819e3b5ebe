package remote

import (
	"errors"
	"net/http"

	"projectboard/internal/domain"
)

// isSuccess reports whether an API status counts as success
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// IsStatus reports whether err is an upstream error carrying the given HTTP status
func IsStatus(err error, status int) bool {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Status == status
	}
	return false
}

// isRejectedCredentials reports whether a login failure means wrong credentials
// rather than an unavailable API
func isRejectedCredentials(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) ||
		IsStatus(err, http.StatusForbidden) ||
		IsStatus(err, http.StatusNotFound)
}
