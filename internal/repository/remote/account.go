package remote

import (
	"context"
	"net/http"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/repositories"
)

// AccountRepository implements repositories.AccountRepository over the
// project API's /register and /login endpoints.
type AccountRepository struct {
	client *Client
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(client *Client) repositories.AccountRepository {
	return &AccountRepository{client: client}
}

// loginResponse accepts both id spellings seen from the API
type loginResponse struct {
	ID       models.ID `json:"id"`
	UserID   models.ID `json:"userId"`
	Username string    `json:"username"`
}

// Register creates an account
// POST /register
func (r *AccountRepository) Register(ctx context.Context, creds repositories.Credentials) error {
	return r.client.do(ctx, "register", http.MethodPost, "/register", creds, nil)
}

// Login checks credentials
// POST /login
func (r *AccountRepository) Login(ctx context.Context, creds repositories.Credentials) (*models.Session, error) {
	var resp loginResponse
	err := r.client.do(ctx, "login", http.MethodPost, "/login", creds, &resp)
	if err != nil {
		if isRejectedCredentials(err) {
			return nil, &domain.UnauthorizedError{Message: "invalid username or password"}
		}
		return nil, err
	}

	ownerID := resp.ID
	if ownerID == "" {
		ownerID = resp.UserID
	}

	return &models.Session{Username: resp.Username, OwnerID: ownerID.String()}, nil
}
