// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a single identity
// (regular user, merchant or administrator) known to the platform.
type Account struct {
	ID                 uuid.UUID        // The unique identifier for the account, assigned at creation.
	Name               string           // The account's display name. Optional.
	Email              string           // The account's email address. Unique across all accounts.
	PasswordHash       string           // Stores the bcrypt-hashed password, only set when Provider is local.
	Role               Role             // The account's role, assigned at creation.
	Provider           Provider         // The identity provider (local or a federated OAuth provider).
	ProviderID         string           // The subject id at the external provider. Empty for local accounts.
	IsVerified         bool             // Business-level approval flag. Semantics depend on Role.
	IsEmailVerified    bool             // Proof that the account owner controls the email address.
	EmailVerifyToken   string           // Single-use token for email verification. Set only while a verification is outstanding.
	EmailVerifyExpires *time.Time       // Absolute expiry of EmailVerifyToken. Nil when no verification is outstanding.
	MerchantProfile    *MerchantProfile // Store-facing metadata. Non-nil if and only if Role is merchant.
	CreatedAt          time.Time        // Timestamp of when this account was created.
	UpdatedAt          time.Time        // Timestamp of the last modification to this account.
}

// MerchantProfile holds data specific to the merchant role. It is owned
// exclusively by its Account and lives and dies with it.
type MerchantProfile struct {
	AccountID   uuid.UUID // Foreign key linking this profile to its Account.
	StoreName   string    // The merchant's official store name.
	Location    string    // The physical location of the store.
	StoreNumber string    // Store number or identifier. Optional.
	PhoneNumber string    // Store contact number. Optional.
	Description string    // A description of the store and its products. Optional.
	CreatedAt   time.Time // Timestamp of when this profile was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}

// CanAuthenticateLocally reports whether the account holds a local credential
// that can be checked against a password.
func (a *Account) CanAuthenticateLocally() bool {
	return a.Provider.IsLocal() && a.PasswordHash != ""
}

// MeetsVerificationRequirement decides the business-verification gate for the
// account. Admins and regular users always pass; merchants pass only once an
// administrator has approved them.
func (a *Account) MeetsVerificationRequirement() bool {
	switch a.Role {
	case RoleAdmin, RoleUser:
		return true
	case RoleMerchant:
		return a.IsVerified
	default:
		return false
	}
}

// HasOutstandingVerification reports whether an email-verification token is
// currently pending consumption.
func (a *Account) HasOutstandingVerification() bool {
	return a.EmailVerifyToken != "" && a.EmailVerifyExpires != nil
}

// ClearVerificationToken removes the outstanding token after successful
// consumption. The matching predicate in the store is the concurrency guard:
// once cleared, the same token can never match again.
func (a *Account) ClearVerificationToken() {
	a.EmailVerifyToken = ""
	a.EmailVerifyExpires = nil
}
