package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleMerchant.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoles_Allows(t *testing.T) {
	adminOnly := Roles{RoleAdmin}

	assert.True(t, adminOnly.Allows(RoleAdmin))
	assert.False(t, adminOnly.Allows(RoleUser))
	assert.False(t, adminOnly.Allows(RoleMerchant))

	// An empty requirement set gates nothing.
	assert.True(t, Roles{}.Allows(RoleUser))
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"USER", "bogus", "ADMIN"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
}

func TestProvider_IsValid(t *testing.T) {
	assert.True(t, ProviderLocal.IsValid())
	assert.True(t, ProviderGoogle.IsValid())
	assert.False(t, Provider("GITHUB").IsValid())

	assert.True(t, ProviderLocal.IsLocal())
	assert.False(t, ProviderGoogle.IsLocal())
}
