package middleware

import (
	"strings"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated session, set by Authenticate.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    tokenSvc,
		accountRepo: accountRepo,
	}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be a Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		// Set session info on the context for handlers to use
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session's role against
// an allowlist. An empty allowlist permits any authenticated session. It must
// be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing from session")
			}

			if !roles.Allows(role) {
				return domainerrors.ErrForbidden.WithDetails("insufficient role for this resource")
			}

			return next(c)
		}
	}
}

// RequireVerified enforces the business-verification gate: admins and regular
// users always pass, merchants only after administrator approval. The flag
// lives in the store, not the token, so approval and revocation take effect
// without re-issuing sessions. Must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireVerified(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, ok := c.Get(ContextKeyAccountID).(uuid.UUID)
		if !ok {
			return domainerrors.ErrForbidden.WithDetails("session information missing")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), accountID)
		if err != nil {
			return domainerrors.ErrForbidden.WithDetails("session account could not be loaded")
		}

		if !account.MeetsVerificationRequirement() {
			return domainerrors.ErrForbidden.WithDetails("account has not completed verification")
		}

		return next(c)
	}
}
