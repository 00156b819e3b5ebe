package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"projectboard/internal/config"
	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/repositories"
	"projectboard/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// accountService implements the AccountService interface
type accountService struct {
	accounts repositories.AccountRepository
	logger   *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accounts repositories.AccountRepository, logger *slog.Logger) services.AccountService {
	return &accountService{
		accounts: accounts,
		logger:   logger,
	}
}

// Register creates an account with the account collaborator
func (s *accountService) Register(ctx context.Context, req *services.RegisterRequest) error {
	if err := validateCredentials(req.Username, req.Password); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	username := strings.TrimSpace(req.Username)
	if err := s.accounts.Register(ctx, repositories.Credentials{Username: username, Password: req.Password}); err != nil {
		s.logger.Warn("registration failed", "username", username, "error", err)
		return err
	}

	s.logger.Info("account registered", "username", username)
	return nil
}

// Login checks credentials and returns the session to persist on the client
func (s *accountService) Login(ctx context.Context, req *services.LoginRequest) (*models.Session, error) {
	if err := validateCredentials(req.Username, req.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	username := strings.TrimSpace(req.Username)
	session, err := s.accounts.Login(ctx, repositories.Credentials{Username: username, Password: req.Password})
	if err != nil {
		s.logger.Info("login failed", "username", username, "error", err)
		return nil, err
	}

	if session.Username == "" {
		session.Username = username
	}
	if session.OwnerID == "" {
		// the dashboard still works; creating projects will ask for a new login
		s.logger.Warn("login response carried no user id", "username", session.Username)
	}

	s.logger.Info("user logged in", "username", session.Username, "owner_id", session.OwnerID)
	return session, nil
}

func validateCredentials(username, password string) error {
	return validation.Errors{
		"username": validation.Validate(strings.TrimSpace(username),
			validation.Required,
			validation.Length(1, config.MaxUsernameLength),
		),
		"password": validation.Validate(password,
			validation.Required,
			validation.Length(1, config.MaxPasswordLength),
		),
	}.Filter()
}
