package auth

import (
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testClaims() service.SessionClaims {
	return service.SessionClaims{
		AccountID: uuid.New(),
		Email:     "user@example.com",
		Role:      entity.RoleUser,
	}
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)

	require.Error(t, err)
}

func TestJWTService_SignAndValidateRoundtrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)
	claims := testClaims()

	token, err := svc.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.AccountID, parsed.AccountID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
}

func TestJWTService_Validate_RejectsWrongSecret(t *testing.T) {
	signer := newTestJWTService(t, "secret-a", time.Hour)
	verifier := newTestJWTService(t, "secret-b", time.Hour)

	token, err := signer.Sign(testClaims())
	require.NoError(t, err)

	_, err = verifier.Validate(token)

	require.Error(t, err)
}

func TestJWTService_Validate_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.Sign(testClaims())
	require.NoError(t, err)

	_, err = svc.Validate(token)

	require.Error(t, err)
}

func TestJWTService_Validate_RejectsUnknownRole(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: time.Hour}

	token, err := svc.Sign(service.SessionClaims{
		AccountID: uuid.New(),
		Email:     "user@example.com",
		Role:      entity.Role("SUPERUSER"),
	})
	require.NoError(t, err)

	_, err = svc.Validate(token)

	require.Error(t, err)
}

func TestJWTService_SignWithSecret(t *testing.T) {
	svc := newTestJWTService(t, "primary-secret", time.Hour)
	claims := testClaims()

	token, err := svc.SignWithSecret(claims, "downstream-secret")
	require.NoError(t, err)

	// The downstream token must not validate against the primary secret.
	_, err = svc.Validate(token)
	require.Error(t, err)

	downstream := &jwtService{secret: "downstream-secret", ttl: time.Hour}
	parsed, err := downstream.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.AccountID, parsed.AccountID)
}

func TestJWTService_SignWithSecret_EmptySecret(t *testing.T) {
	svc := newTestJWTService(t, "primary-secret", time.Hour)

	_, err := svc.SignWithSecret(testClaims(), "")

	require.Error(t, err)
}
