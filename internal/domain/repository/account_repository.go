// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByVerificationToken retrieves the account whose outstanding
	// email-verification token equals the given value and has not expired as
	// of the supplied instant. Returns ErrAccountNotFound otherwise; wrong
	// and expired tokens are indistinguishable at this level.
	FindByVerificationToken(ctx context.Context, token string, now time.Time) (*entity.Account, error)

	// Create persists a new account. When the entity carries a
	// MerchantProfile, both rows are inserted in the same statement batch so
	// no reader can observe one without the other. Uniqueness violations on
	// email or (provider, provider id) surface as domain conflict errors.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account, including its merchant profile.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account and cascades deletion of its merchant profile.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all accounts, optionally preloading merchant profiles.
	List(ctx context.Context, includeProfile bool) ([]*entity.Account, error)
}
