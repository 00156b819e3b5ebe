package services

import (
	"context"

	"projectboard/internal/domain/models"
)

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a request to sign in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountService validates credentials and forwards them to the account collaborator
type AccountService interface {
	Register(ctx context.Context, req *RegisterRequest) error
	Login(ctx context.Context, req *LoginRequest) (*models.Session, error)
}
