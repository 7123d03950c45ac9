package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	tokenSvc    *mockSvc.MockTokenService
	accountRepo *mockRepo.MockAccountRepository
	echo        *echo.Echo
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(tokenSvc, accountRepo),
		tokenSvc:    tokenSvc,
		accountRepo: accountRepo,
		echo:        echo.New(),
	}
}

func (fx authMiddlewareFixtures) newContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return fx.echo.NewContext(req, httptest.NewRecorder())
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		err := fx.middleware.Authenticate(func(c echo.Context) error { return nil })(fx.newContext(""))

		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("non-bearer header", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		err := fx.middleware.Authenticate(func(c echo.Context) error { return nil })(fx.newContext("Basic abc"))

		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("signature mismatch"))

		err := fx.middleware.Authenticate(func(c echo.Context) error { return nil })(fx.newContext("Bearer bad-token"))

		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("valid token sets session", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		claims := &service.SessionClaims{AccountID: uuid.New(), Email: "user@example.com", Role: entity.RoleUser}
		fx.tokenSvc.EXPECT().Validate("good-token").Return(claims, nil)

		var called bool
		c := fx.newContext("Bearer good-token")
		err := fx.middleware.Authenticate(func(c echo.Context) error {
			called = true

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, claims.AccountID, c.Get(ContextKeyAccountID))
		assert.Equal(t, claims.Role, c.Get(ContextKeyRole))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	adminOnly := fx.middleware.RequireRole(entity.RoleAdmin)

	t.Run("allowed role passes", func(t *testing.T) {
		c := fx.newContext("")
		c.Set(ContextKeyRole, entity.RoleAdmin)

		var called bool
		err := adminOnly(func(c echo.Context) error {
			called = true

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("insufficient role rejected", func(t *testing.T) {
		c := fx.newContext("")
		c.Set(ContextKeyRole, entity.RoleUser)

		err := adminOnly(func(c echo.Context) error { return nil })(c)

		assertErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("missing role rejected", func(t *testing.T) {
		err := adminOnly(func(c echo.Context) error { return nil })(fx.newContext(""))

		assertErrorCode(t, err, "FORBIDDEN")
	})
}

func TestAuthMiddleware_RequireVerified(t *testing.T) {
	t.Run("regular user passes", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		id := uuid.New()
		fx.accountRepo.EXPECT().
			FindByID(mock.Anything, id).
			Return(&entity.Account{ID: id, Role: entity.RoleUser}, nil)

		c := fx.newContext("")
		c.Set(ContextKeyAccountID, id)

		var called bool
		err := fx.middleware.RequireVerified(func(c echo.Context) error {
			called = true

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("approved merchant passes", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		id := uuid.New()
		fx.accountRepo.EXPECT().
			FindByID(mock.Anything, id).
			Return(&entity.Account{ID: id, Role: entity.RoleMerchant, IsVerified: true}, nil)

		c := fx.newContext("")
		c.Set(ContextKeyAccountID, id)

		err := fx.middleware.RequireVerified(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
	})

	t.Run("unapproved merchant rejected", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		id := uuid.New()
		fx.accountRepo.EXPECT().
			FindByID(mock.Anything, id).
			Return(&entity.Account{ID: id, Role: entity.RoleMerchant, IsVerified: false}, nil)

		c := fx.newContext("")
		c.Set(ContextKeyAccountID, id)

		err := fx.middleware.RequireVerified(func(c echo.Context) error { return nil })(c)

		assertErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("deleted account rejected", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		id := uuid.New()
		fx.accountRepo.EXPECT().
			FindByID(mock.Anything, id).
			Return(nil, repository.ErrAccountNotFound)

		c := fx.newContext("")
		c.Set(ContextKeyAccountID, id)

		err := fx.middleware.RequireVerified(func(c echo.Context) error { return nil })(c)

		assertErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("missing session rejected", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		err := fx.middleware.RequireVerified(func(c echo.Context) error { return nil })(fx.newContext(""))

		assertErrorCode(t, err, "FORBIDDEN")
	})
}
