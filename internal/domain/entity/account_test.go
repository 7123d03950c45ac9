package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_CanAuthenticateLocally(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{
			name:    "local account with password hash",
			account: Account{Provider: ProviderLocal, PasswordHash: "hash"},
			want:    true,
		},
		{
			name:    "local account without password hash",
			account: Account{Provider: ProviderLocal},
			want:    false,
		},
		{
			name:    "google account with stray hash",
			account: Account{Provider: ProviderGoogle, PasswordHash: "hash"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.CanAuthenticateLocally())
		})
	}
}

func TestAccount_MeetsVerificationRequirement(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{name: "user always passes", account: Account{Role: RoleUser}, want: true},
		{name: "unverified user still passes", account: Account{Role: RoleUser, IsVerified: false}, want: true},
		{name: "admin always passes", account: Account{Role: RoleAdmin}, want: true},
		{name: "unapproved merchant fails", account: Account{Role: RoleMerchant}, want: false},
		{name: "approved merchant passes", account: Account{Role: RoleMerchant, IsVerified: true}, want: true},
		{name: "unknown role fails", account: Account{Role: Role("SUPERUSER")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.MeetsVerificationRequirement())
		})
	}
}

func TestAccount_VerificationTokenLifecycle(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	account := Account{
		EmailVerifyToken:   "token",
		EmailVerifyExpires: &expires,
	}

	assert.True(t, account.HasOutstandingVerification())

	account.ClearVerificationToken()

	assert.False(t, account.HasOutstandingVerification())
	assert.Empty(t, account.EmailVerifyToken)
	assert.Nil(t, account.EmailVerifyExpires)
}
