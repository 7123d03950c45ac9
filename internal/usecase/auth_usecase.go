// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required for local self-registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a local credential login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the ID token posted by a Google Sign-In client.
type GoogleLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// SessionUser is the public-safe account summary returned with a session.
type SessionUser struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  entity.Role `json:"role"`
}

// SessionOutput pairs the signed session token with the account summary.
// ServiceTokens carries additional tokens signed with per-downstream-service
// secrets; a service without a configured secret gets no entry.
type SessionOutput struct {
	User          SessionUser       `json:"user"`
	AccessToken   string            `json:"access_token"`
	ServiceTokens map[string]string `json:"service_tokens,omitempty"`
}

// AuthUsecase validates credentials, federates OAuth identities into
// accounts, and issues session tokens.
type AuthUsecase interface {
	// Register creates a local user account and immediately issues a session.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login validates local credentials and issues a session. The error for
	// an unknown email and a wrong password is identical.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GoogleLogin verifies a Google ID token and logs the profile in.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*SessionOutput, error)

	// OAuthLogin federates an already-verified OAuth profile into an account
	// and issues a session.
	OAuthLogin(ctx context.Context, profile *service.OAuthProfile) (*SessionOutput, error)

	// IssueSession builds session claims for an account and signs them.
	IssueSession(ctx context.Context, account *entity.Account) (*SessionOutput, error)

	// Profile returns the account for an authenticated session subject.
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
