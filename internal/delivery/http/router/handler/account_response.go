// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountResponse is the public-safe projection of an account. The password
// hash and the verification token never leave the service.
type AccountResponse struct {
	ID              uuid.UUID                `json:"id"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	Role            entity.Role              `json:"role"`
	Provider        entity.Provider          `json:"provider"`
	IsVerified      bool                     `json:"is_verified"`
	IsEmailVerified bool                     `json:"is_email_verified"`
	MerchantProfile *MerchantProfileResponse `json:"merchant_profile,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// MerchantProfileResponse is the public projection of a merchant profile.
type MerchantProfileResponse struct {
	StoreName   string `json:"store_name"`
	Location    string `json:"location"`
	StoreNumber string `json:"store_number,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Description string `json:"description,omitempty"`
}

// toAccountResponse maps a domain entity to its public projection.
func toAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:              account.ID,
		Name:            account.Name,
		Email:           account.Email,
		Role:            account.Role,
		Provider:        account.Provider,
		IsVerified:      account.IsVerified,
		IsEmailVerified: account.IsEmailVerified,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}

	if account.MerchantProfile != nil {
		resp.MerchantProfile = &MerchantProfileResponse{
			StoreName:   account.MerchantProfile.StoreName,
			Location:    account.MerchantProfile.Location,
			StoreNumber: account.MerchantProfile.StoreNumber,
			PhoneNumber: account.MerchantProfile.PhoneNumber,
			Description: account.MerchantProfile.Description,
		}
	}

	return resp
}

// toAccountResponses maps a slice of accounts.
func toAccountResponses(accounts []*entity.Account) []*AccountResponse {
	responses := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}

	return responses
}
