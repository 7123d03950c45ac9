package service

import (
	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims carries the identity claims embedded in a session token.
type SessionClaims struct {
	AccountID uuid.UUID
	Email     string
	Role      entity.Role
}

// TokenService defines the interface for generating and validating signed
// bearer tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Sign creates a session token for the given claims using the service's
	// own signing secret.
	Sign(claims SessionClaims) (string, error)

	// SignWithSecret creates a token for the given claims signed with the
	// supplied secret. Used to mint per-downstream-service tokens.
	SignWithSecret(claims SessionClaims, secret string) (string, error)

	// Validate checks a session token and returns its claims.
	Validate(token string) (*SessionClaims, error)
}
