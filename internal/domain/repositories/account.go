package repositories

import (
	"context"

	"projectboard/internal/domain/models"
)

// Credentials are the username and password sent to the account endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountRepository registers users and checks their credentials against the project API.
type AccountRepository interface {
	Register(ctx context.Context, creds Credentials) error

	// Login returns the session for valid credentials and
	// domain.ErrUnauthorized for rejected ones
	Login(ctx context.Context, creds Credentials) (*models.Session, error)
}
