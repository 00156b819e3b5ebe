package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstream covers every failed call to the project API. The API is
	// opaque, so transport errors and non-2xx responses collapse into one kind.
	ErrUpstream = errors.New("project api request failed")

	// ErrMissingSession is returned when an operation needs session state
	// (the owner id) that the current session does not carry.
	ErrMissingSession = errors.New("missing session state")
)

// UpstreamError describes a failed project API call.
type UpstreamError struct {
	Op     string // list, create, update, delete, register, login
	Status int    // HTTP status returned by the API, 0 for transport failures
	Body   string // truncated response body, for logs only
	Err    error  // transport error, if any
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("project api %s: %v", e.Op, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("project api %s: status %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("project api %s failed", e.Op)
	}
}

// StatusCode implements HTTPError. The dashboard reports upstream failures as a bad gateway.
func (e *UpstreamError) StatusCode() int { return http.StatusBadGateway }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is allows errors.Is() to match against ErrUpstream
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// OperationError pairs a failed dashboard operation with the message shown
// to the user. The underlying error stays reachable through errors.Is/As.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error { return e.Err }

// UserMessage returns the text meant for the error banner.
func (e *OperationError) UserMessage() string { return e.Message }
