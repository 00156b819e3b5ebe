package auth

import (
	"errors"
	"fmt"
	"time"

	"projectboard/internal/domain"
	"projectboard/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionIssuer is the iss claim of session tokens
const SessionIssuer = "projectboard"

// HMACSessionCodec signs session tokens with HS256.
type HMACSessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionCodec creates an HS256 session codec
func NewSessionCodec(secret string, ttl time.Duration) (*HMACSessionCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &HMACSessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the username and the owner id (as subject)
func (c *HMACSessionCodec) Issue(session models.Session) (string, time.Time, error) {
	if session.Username == "" {
		return "", time.Time{}, fmt.Errorf("%w: session has no username", domain.ErrValidation)
	}

	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionIssuer,
			Subject:   session.OwnerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: session.Username,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks signature, issuer and expiry
func (c *HMACSessionCodec) Verify(tokenString string) (*models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(SessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	if claims.Username == "" {
		return nil, fmt.Errorf("%w: session token has no username", domain.ErrUnauthorized)
	}

	return &models.Session{Username: claims.Username, OwnerID: claims.Subject}, nil
}
