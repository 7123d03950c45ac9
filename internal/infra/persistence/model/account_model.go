// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"

	"accounts/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'USER'"`
	Provider     string    `gorm:"type:varchar(20);not null;default:'LOCAL';uniqueIndex:idx_accounts_provider_identity,priority:1,where:provider_id <> ''"`
	ProviderID   string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_provider_identity,priority:2"`

	IsVerified      bool `gorm:"not null;default:false"`
	IsEmailVerified bool `gorm:"not null;default:false"`

	// The token is unique while outstanding; consumed tokens are reset to NULL.
	EmailVerifyToken   *string    `gorm:"type:varchar(128);uniqueIndex"`
	EmailVerifyExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	MerchantProfile *MerchantProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// MerchantProfileModel mirrors the 'merchant_profiles' table.
// AccountID references accounts.id (UUID).
type MerchantProfileModel struct {
	AccountID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreName   string    `gorm:"type:varchar(100);not null"`
	Location    string    `gorm:"type:varchar(255)"`
	StoreNumber string    `gorm:"type:varchar(50)"`
	PhoneNumber string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}

// FromAccountDomain maps a pure domain entity to its persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	m := &AccountModel{
		ID:                 account.ID,
		Name:               account.Name,
		Email:              account.Email,
		PasswordHash:       account.PasswordHash,
		Role:               account.Role.String(),
		Provider:           account.Provider.String(),
		ProviderID:         account.ProviderID,
		IsVerified:         account.IsVerified,
		IsEmailVerified:    account.IsEmailVerified,
		EmailVerifyExpires: account.EmailVerifyExpires,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}

	if account.EmailVerifyToken != "" {
		token := account.EmailVerifyToken
		m.EmailVerifyToken = &token
	}

	if account.MerchantProfile != nil {
		m.MerchantProfile = &MerchantProfileModel{
			AccountID:   account.MerchantProfile.AccountID,
			StoreName:   account.MerchantProfile.StoreName,
			Location:    account.MerchantProfile.Location,
			StoreNumber: account.MerchantProfile.StoreNumber,
			PhoneNumber: account.MerchantProfile.PhoneNumber,
			Description: account.MerchantProfile.Description,
			CreatedAt:   account.MerchantProfile.CreatedAt,
			UpdatedAt:   account.MerchantProfile.UpdatedAt,
		}
	}

	return m
}

// ToAccountDomain maps a persistence model back to a pure domain entity.
func ToAccountDomain(m *AccountModel) *entity.Account {
	account := &entity.Account{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               entity.Role(m.Role),
		Provider:           entity.Provider(m.Provider),
		ProviderID:         m.ProviderID,
		IsVerified:         m.IsVerified,
		IsEmailVerified:    m.IsEmailVerified,
		EmailVerifyExpires: m.EmailVerifyExpires,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.EmailVerifyToken != nil {
		account.EmailVerifyToken = *m.EmailVerifyToken
	}

	if m.MerchantProfile != nil {
		account.MerchantProfile = &entity.MerchantProfile{
			AccountID:   m.MerchantProfile.AccountID,
			StoreName:   m.MerchantProfile.StoreName,
			Location:    m.MerchantProfile.Location,
			StoreNumber: m.MerchantProfile.StoreNumber,
			PhoneNumber: m.MerchantProfile.PhoneNumber,
			Description: m.MerchantProfile.Description,
			CreatedAt:   m.MerchantProfile.CreatedAt,
			UpdatedAt:   m.MerchantProfile.UpdatedAt,
		}
	}

	return account
}
