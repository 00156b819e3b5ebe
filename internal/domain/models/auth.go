package models

import "github.com/golang-jwt/jwt/v5"

// Session is the per-user state the auth collaborator hands to the dashboard.
// OwnerID may be empty when the login response carried no user id; creating
// projects then fails with a missing-session error.
type Session struct {
	Username string `json:"username"`
	OwnerID  string `json:"ownerId,omitempty"`
}

// Key identifies the session's dashboard store.
func (s Session) Key() string {
	if s.OwnerID != "" {
		return s.OwnerID
	}
	return "user:" + s.Username
}

// SessionClaims is the payload of the dashboard's own session cookie.
// The subject claim carries the owner id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// IdentityClaims is the subset of an external identity provider's token the
// dashboard reads when bearer tokens are accepted.
type IdentityClaims struct {
	jwt.RegisteredClaims
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// Session maps identity claims to dashboard session state.
func (c *IdentityClaims) Session() Session {
	username := c.PreferredUsername
	if username == "" {
		username = c.Email
	}
	return Session{Username: username, OwnerID: c.Subject}
}
