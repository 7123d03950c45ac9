// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
// Role and Provider are optional and default to USER / LOCAL.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       entity.Role
	Provider   entity.Provider
	ProviderID string
}

// CreateAdminInput defines the data required to register an administrator.
type CreateAdminInput struct {
	Name           string
	Email          string
	Password       string
	AdminSecretKey string
}

// CreateMerchantInput defines the data required to register a merchant
// together with its store profile.
type CreateMerchantInput struct {
	Name        string
	Email       string
	Password    string
	Provider    entity.Provider
	ProviderID  string
	StoreName   string
	Location    string
	StoreNumber string
	PhoneNumber string
	Description string
}

// UpdateAccountInput defines a partial update. Nil fields are left untouched.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// --- Output DTOs ---

// VerificationStatus summarizes an account's verification pair.
type VerificationStatus struct {
	AccountID       uuid.UUID   `json:"account_id"`
	Role            entity.Role `json:"role"`
	IsVerified      bool        `json:"is_verified"`
	IsEmailVerified bool        `json:"is_email_verified"`
	// MeetsRequirement reports the business-verification gate for the role.
	MeetsRequirement bool `json:"meets_requirement"`
}

// AccountUsecase is the central policy component for the account lifecycle:
// it creates accounts with correct role/verification defaults, issues and
// consumes email-verification tokens, promotes merchant verification, and
// manages updates and deletion.
type AccountUsecase interface {
	// CreateUser creates an account with role-dependent verification defaults
	// and, for non-admin roles, dispatches a verification email.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.Account, error)

	// CreateAdmin registers an administrator, gated by the configured admin
	// secret key and optional email-domain allowlist.
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Account, error)

	// CreateMerchant atomically creates a merchant account and its profile.
	CreateMerchant(ctx context.Context, input *CreateMerchantInput) (*entity.Account, error)

	// SendVerificationEmail issues a fresh single-use verification token for
	// the account with the given email, overwriting any outstanding one, and
	// dispatches the verification message.
	SendVerificationEmail(ctx context.Context, email string) error

	// VerifyEmail consumes a verification token, marking the email verified.
	VerifyEmail(ctx context.Context, token string) (*entity.Account, error)

	// VerifyUser flips the business-verification flag. Administrative
	// operation used to approve merchants.
	VerifyUser(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindOrCreateSocialUser federates an external identity into an account.
	FindOrCreateSocialUser(ctx context.Context, email, name string, provider entity.Provider, providerID string) (*entity.Account, error)

	// Get retrieves a single account by id.
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// List retrieves all accounts, optionally with merchant profiles.
	List(ctx context.Context, includeProfile bool) ([]*entity.Account, error)

	// VerificationStatus reports the verification pair for an account.
	VerificationStatus(ctx context.Context, id uuid.UUID) (*VerificationStatus, error)

	// Update applies a partial update, re-hashing the password when one is
	// supplied for a local account.
	Update(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)

	// Remove deletes an account, cascading its merchant profile.
	Remove(ctx context.Context, id uuid.UUID) error
}
