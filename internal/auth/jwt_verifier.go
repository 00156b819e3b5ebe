package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// JWKSVerifier implements TokenVerifier using an identity provider's JWKS endpoint.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from jwksURL.
// keyfunc caches the keys and refreshes them based on HTTP cache headers.
func NewJWKSVerifier(ctx context.Context, jwksURL string, logger *slog.Logger) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWKS verifier initialized", "jwks_url", jwksURL)

	return newJWKSVerifier(jwks, logger), nil
}

func newJWKSVerifier(jwks keyfunc.Keyfunc, logger *slog.Logger) *JWKSVerifier {
	return &JWKSVerifier{
		jwks:   jwks,
		logger: logger,
	}
}

// VerifyToken validates a bearer token and maps its claims to a session.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*models.Session, error) {
	claims := &models.IdentityClaims{}

	// only asymmetric algorithms; an HS256 token here would be signed with a public key
	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
	)
	if err != nil {
		v.logger.Debug("bearer token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("bearer token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	session := claims.Session()
	if session.Username == "" {
		v.logger.Debug("bearer token carries no username", "sub", claims.Subject)
		return nil, domain.ErrUnauthorized
	}

	return &session, nil
}

// Close is a no-op: keyfunc v3 manages its own refresh goroutine through the
// context passed at construction.
func (v *JWKSVerifier) Close() error {
	v.logger.Info("JWKS verifier closed")
	return nil
}
