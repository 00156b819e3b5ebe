package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"projectboard/internal/domain"
	"projectboard/internal/httputil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// handleError converts domain errors to HTTP responses. Dashboard operation
// errors carry the message for the user's error banner; that message is the
// problem detail.
func handleError(w http.ResponseWriter, err error) {
	var opErr *domain.OperationError
	userMessage := ""
	if errors.As(err, &opErr) {
		userMessage = opErr.UserMessage()
	}

	var fieldErrs validation.Errors

	switch {
	case errors.Is(err, domain.ErrValidation) && errors.As(err, &fieldErrs):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, "validation failed", map[string]interface{}{
			"fields": fieldMessages(fieldErrs),
		})
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMissingSession):
		httputil.RespondError(w, http.StatusUnauthorized, orDefault(userMessage, "session has no user id"))
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, orDefault(userMessage, err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, orDefault(userMessage, "invalid username or password"))
	case errors.Is(err, domain.ErrUpstream):
		httputil.RespondError(w, http.StatusBadGateway, orDefault(userMessage, "the project service is unavailable, please try again"))
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// logFailure records a failed operation. Upstream failures log at warn and
// unexpected errors at error; errors the caller caused log at debug.
func logFailure(logger *slog.Logger, r *http.Request, msg string, err error, attrs ...any) {
	level := slog.LevelError
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrMissingSession):
		level = slog.LevelDebug
	case errors.Is(err, domain.ErrUpstream):
		level = slog.LevelWarn
	}

	attrs = append(attrs,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", httputil.GetRequestID(r.Context()),
	)
	logger.Log(r.Context(), level, msg, attrs...)
}

func fieldMessages(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		if err != nil {
			out[field] = err.Error()
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
