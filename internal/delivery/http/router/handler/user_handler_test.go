package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/internal/delivery/http/validator"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	mockUC "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userHandlerFixtures holds all test dependencies for user handler tests.
type userHandlerFixtures struct {
	handler   *UserHandler
	accountUC *mockUC.MockAccountUsecase
	echo      *echo.Echo
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	accountUC := mockUC.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return userHandlerFixtures{
		handler:   NewUserHandler(accountUC, logger),
		accountUC: accountUC,
		echo:      e,
	}
}

func (fx userHandlerFixtures) postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestUserHandler_CreateUser_IgnoresPrivilegedFields(t *testing.T) {
	fx := createTestUserHandler(t)

	// Role and provider in the body must have no effect: the public endpoint
	// only ever creates local USER accounts.
	c, rec := fx.postJSON("/users", `{
		"name": "Attacker",
		"email": "evil@attacker.example",
		"password": "longenough1",
		"role": "ADMIN",
		"provider": "GOOGLE",
		"provider_id": "google-sub-1"
	}`)

	fx.accountUC.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*usecase.CreateUserInput")).
		Run(func(ctx context.Context, input *usecase.CreateUserInput) {
			assert.Equal(t, entity.RoleUser, input.Role)
			assert.Equal(t, entity.ProviderLocal, input.Provider)
			assert.Empty(t, input.ProviderID)
		}).
		Return(&entity.Account{
			ID:         uuid.New(),
			Name:       "Attacker",
			Email:      "evil@attacker.example",
			Role:       entity.RoleUser,
			Provider:   entity.ProviderLocal,
			IsVerified: true,
		}, nil)

	require.NoError(t, fx.handler.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
	assert.NotContains(t, rec.Body.String(), "ADMIN")
}

func TestUserHandler_CreateUser_RequiresPassword(t *testing.T) {
	fx := createTestUserHandler(t)

	c, _ := fx.postJSON("/users", `{"email": "user@example.com"}`)

	err := fx.handler.CreateUser(c)

	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserHandler_CreateAdmin_RequiresSecretKey(t *testing.T) {
	fx := createTestUserHandler(t)

	c, _ := fx.postJSON("/users/admin", `{
		"email": "boss@example.com",
		"password": "longenough1"
	}`)

	err := fx.handler.CreateAdmin(c)

	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
