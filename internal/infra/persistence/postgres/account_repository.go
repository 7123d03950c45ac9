// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerIdentityIndex is the unique index guarding (provider, provider_id).
// Its name shows up in the constraint violation message and is used to tell
// a provider-identity conflict apart from an email conflict.
const providerIdentityIndex = "idx_accounts_provider_identity"

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface,
// adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading the
// merchant profile when one exists.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return model.ToAccountDomain(&m), nil
}

// FindByEmail retrieves a single account by its email address.
// The match is exact, not case-folded.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Where("email = ?", email).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return model.ToAccountDomain(&m), nil
}

// FindByVerificationToken retrieves the account holding the outstanding
// verification token, provided it has not expired. The single predicate is
// the concurrency guard: a consumed or replaced token no longer matches.
func (repo *accountRepository) FindByVerificationToken(ctx context.Context, token string, now time.Time) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("MerchantProfile").
		Where("email_verify_token = ? AND email_verify_expires > ?", token, now).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by verification token")
	}

	return model.ToAccountDomain(&m), nil
}

// Create persists a new account. A merchant profile on the entity is inserted
// in the same statement batch, so both rows appear together or not at all.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, providerIdentityIndex) {
				return domainerrors.ErrProviderIdentityConflict.WrapMessage("provider identity already linked")
			}

			return domainerrors.ErrEmailConflict.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Reflect generated values back onto the domain entity.
	account.ID = m.ID
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	if account.MerchantProfile != nil && m.MerchantProfile != nil {
		account.MerchantProfile.AccountID = m.MerchantProfile.AccountID
		account.MerchantProfile.CreatedAt = m.MerchantProfile.CreatedAt
		account.MerchantProfile.UpdatedAt = m.MerchantProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing account, including its merchant profile.
// Save writes every column so cleared fields (like a consumed verification
// token) are persisted as NULL.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	m := model.FromAccountDomain(account)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(m).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, providerIdentityIndex) {
				return domainerrors.ErrProviderIdentityConflict.WrapMessage("provider identity already linked")
			}

			return domainerrors.ErrEmailConflict.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = m.UpdatedAt
	if account.MerchantProfile != nil && m.MerchantProfile != nil {
		account.MerchantProfile.UpdatedAt = m.MerchantProfile.UpdatedAt
	}

	return nil
}

// Delete removes an account. The merchant profile row is removed by the
// ON DELETE CASCADE constraint.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// List retrieves all accounts ordered by creation time, optionally preloading
// merchant profiles.
func (repo *accountRepository) List(ctx context.Context, includeProfile bool) ([]*entity.Account, error) {
	query := repo.db.WithContext(ctx).Order("created_at")
	if includeProfile {
		query = query.Preload("MerchantProfile")
	}

	var models []*model.AccountModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(models))
	for _, m := range models {
		accounts = append(accounts, model.ToAccountDomain(m))
	}

	return accounts, nil
}
