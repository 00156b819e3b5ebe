package auth

import (
	"time"

	"projectboard/internal/domain/models"
)

// SessionCodec issues and verifies the dashboard's own session tokens.
// The token is what the client persists between visits.
type SessionCodec interface {
	// Issue signs a token for the session and returns it with its expiry
	Issue(session models.Session) (token string, expiresAt time.Time, err error)

	// Verify validates a token and returns the session it carries
	Verify(token string) (*models.Session, error)
}

// TokenVerifier validates bearer tokens issued by an external identity provider.
type TokenVerifier interface {
	// VerifyToken validates a token string and returns the session it maps to.
	// Returns domain.ErrUnauthorized for any token that does not verify.
	VerifyToken(tokenString string) (*models.Session, error)

	// Close releases any resources held by the verifier
	Close() error
}
