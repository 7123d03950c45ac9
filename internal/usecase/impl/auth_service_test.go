package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	mockUC "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	accountUsecase *mockUC.MockAccountUsecase
	accountRepo    *mockRepo.MockAccountRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	googleVerifier *mockSvc.MockOAuthVerifier
}

func createTestAuthService(t *testing.T, cfg *config.Config, withGoogle bool) authServiceFixtures {
	accountUsecase := mockUC.NewMockAccountUsecase(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if cfg == nil {
		cfg = &config.Config{}
	}

	params := AuthServiceParams{
		AccountUsecase: accountUsecase,
		AccountRepo:    accountRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Config:         cfg,
		Logger:         logger,
	}

	var googleVerifier *mockSvc.MockOAuthVerifier
	if withGoogle {
		googleVerifier = mockSvc.NewMockOAuthVerifier(t)
		params.GoogleVerifier = googleVerifier
	}

	return authServiceFixtures{
		service:        NewAuthService(params),
		accountUsecase: accountUsecase,
		accountRepo:    accountRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		googleVerifier: googleVerifier,
	}
}

func TestAuthService_Register_IssuesSession(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "user@example.com",
		Role:     entity.RoleUser,
		Provider: entity.ProviderLocal,
	}

	fx.accountUsecase.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*usecase.CreateUserInput")).
		Run(func(ctx context.Context, input *usecase.CreateUserInput) {
			assert.Equal(t, entity.RoleUser, input.Role)
			assert.Equal(t, entity.ProviderLocal, input.Provider)
		}).
		Return(account, nil)
	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("service.SessionClaims")).
		Return("signed.jwt.token", nil)

	session, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     account.Name,
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", session.AccessToken)
	assert.Equal(t, account.ID, session.User.ID)
	assert.Equal(t, entity.RoleUser, session.User.Role)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Role:         entity.RoleUser,
		Provider:     entity.ProviderLocal,
		PasswordHash: "stored_hash",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().
		Sign(service.SessionClaims{AccountID: account.ID, Email: account.Email, Role: account.Role}).
		Return("signed.jwt.token", nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", session.AccessToken)
	assert.Empty(t, session.ServiceTokens)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, nil, false)

		fx.accountRepo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("social account without local credential", func(t *testing.T) {
		fx := createTestAuthService(t, nil, false)

		account := &entity.Account{
			ID:       uuid.New(),
			Email:    "social@example.com",
			Role:     entity.RoleUser,
			Provider: entity.ProviderGoogle,
		}
		fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "whatever"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, nil, false)

		account := &entity.Account{
			ID:           uuid.New(),
			Email:        "user@example.com",
			Role:         entity.RoleUser,
			Provider:     entity.ProviderLocal,
			PasswordHash: "stored_hash",
		}
		fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "wrong"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GoogleLogin_NotConfigured(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	_, err := fx.service.GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "some-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, nil, true)

	ctx := context.Background()
	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token signature mismatch"))

	_, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "bad-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleLogin_Success(t *testing.T) {
	fx := createTestAuthService(t, nil, true)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Social User",
		Email:    "social@example.com",
		Role:     entity.RoleUser,
		Provider: entity.ProviderGoogle,
	}

	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "good-token").
		Return(&service.OAuthProfile{
			ID:          "google-sub-1",
			Emails:      []string{account.Email},
			DisplayName: account.Name,
			Provider:    entity.ProviderGoogle,
		}, nil)
	fx.accountUsecase.EXPECT().
		FindOrCreateSocialUser(ctx, account.Email, account.Name, entity.ProviderGoogle, "google-sub-1").
		Return(account, nil)
	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("service.SessionClaims")).
		Return("signed.jwt.token", nil)

	session, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, account.ID, session.User.ID)
}

func TestAuthService_OAuthLogin_MissingEmail(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	_, err := fx.service.OAuthLogin(context.Background(), &service.OAuthProfile{
		ID:       "google-sub-1",
		Provider: entity.ProviderGoogle,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthEmailMissing)
}

func TestAuthService_OAuthLogin_NameFallsBackToMailboxName(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "jdoe@example.com",
		Role:     entity.RoleUser,
		Provider: entity.ProviderGoogle,
	}

	fx.accountUsecase.EXPECT().
		FindOrCreateSocialUser(ctx, "jdoe@example.com", "jdoe", entity.ProviderGoogle, "google-sub-1").
		Return(account, nil)
	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("service.SessionClaims")).
		Return("signed.jwt.token", nil)

	_, err := fx.service.OAuthLogin(ctx, &service.OAuthProfile{
		ID:       "google-sub-1",
		Emails:   []string{"jdoe@example.com"},
		Provider: entity.ProviderGoogle,
	})

	require.NoError(t, err)
}

func TestAuthService_IssueSession_MintsServiceTokens(t *testing.T) {
	cfg := &config.Config{
		ServiceTokens: map[string]string{
			"orders":   "orders-secret",
			"delivery": "delivery-secret",
		},
	}
	fx := createTestAuthService(t, cfg, false)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  entity.RoleUser,
	}
	claims := service.SessionClaims{AccountID: account.ID, Email: account.Email, Role: account.Role}

	fx.tokenService.EXPECT().Sign(claims).Return("primary.jwt", nil)
	fx.tokenService.EXPECT().SignWithSecret(claims, "orders-secret").Return("orders.jwt", nil)
	fx.tokenService.EXPECT().SignWithSecret(claims, "delivery-secret").Return("delivery.jwt", nil)

	session, err := fx.service.IssueSession(ctx, account)

	require.NoError(t, err)
	assert.Equal(t, "primary.jwt", session.AccessToken)
	assert.Equal(t, map[string]string{
		"orders":   "orders.jwt",
		"delivery": "delivery.jwt",
	}, session.ServiceTokens)
}

func TestAuthService_IssueSession_SigningFailure(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleUser}

	fx.tokenService.EXPECT().
		Sign(mock.AnythingOfType("service.SessionClaims")).
		Return("", errors.New("empty secret"))

	_, err := fx.service.IssueSession(context.Background(), account)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenSigningFailed)
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	fx := createTestAuthService(t, nil, false)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Profile(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
