package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	mailer      *mockSvc.MockMailer
	publisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T, cfg *config.Config) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if cfg == nil {
		cfg = &config.Config{}
	}

	// Lifecycle events are incidental to most tests.
	publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Mailer:      mailer,
		Publisher:   publisher,
		Config:      cfg,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		mailer:      mailer,
		publisher:   publisher,
	}
}

func adminConfig(secret string, domains ...string) *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			SecretKey:      secret,
			AllowedDomains: domains,
		},
	}
}

func TestAccountService_CreateUser_DefaultsAndVerificationEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	var persistedToken string
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			persistedToken = account.EmailVerifyToken
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, input.Email, input.Name, mock.AnythingOfType("string")).
		Return(nil)

	account, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.Equal(t, entity.ProviderLocal, account.Provider)
	assert.True(t, account.IsVerified)
	assert.False(t, account.IsEmailVerified)
	assert.Equal(t, "hashed_password", account.PasswordHash)
	// 32 random bytes hex-encoded.
	assert.Len(t, persistedToken, 64)
	require.NotNil(t, account.EmailVerifyExpires)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *account.EmailVerifyExpires, time.Minute)
}

func TestAccountService_CreateUser_AdminRoleSkipsVerification(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Email:    "admin@example.com",
		Password: "Password123!",
		Role:     entity.RoleAdmin,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.True(t, account.IsVerified)
	assert.True(t, account.IsEmailVerified)
	// No Update/SendVerificationEmail expectations: an admin gets no token.
}

func TestAccountService_CreateUser_MailerFailureDoesNotFailCreation(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, input.Email, input.Name, mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	account, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestAccountService_CreateUser_UnknownRole(t *testing.T) {
	fx := createTestAccountService(t, nil)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email: "user@example.com",
		Role:  entity.Role("SUPERUSER"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_CreateAdmin_Success(t *testing.T) {
	fx := createTestAccountService(t, adminConfig("s3cret", "example.com"))

	ctx := context.Background()
	input := &usecase.CreateAdminInput{
		Name:           "Admin",
		Email:          "boss@example.com",
		Password:       "Password123!",
		AdminSecretKey: "s3cret",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := fx.service.CreateAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	assert.True(t, account.IsVerified)
	assert.True(t, account.IsEmailVerified)
}

func TestAccountService_CreateAdmin_WrongSecret(t *testing.T) {
	fx := createTestAccountService(t, adminConfig("s3cret"))

	_, err := fx.service.CreateAdmin(context.Background(), &usecase.CreateAdminInput{
		Email:          "boss@example.com",
		Password:       "Password123!",
		AdminSecretKey: "guess",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRegistrationDenied)
}

func TestAccountService_CreateAdmin_NoSecretConfigured(t *testing.T) {
	fx := createTestAccountService(t, nil)

	_, err := fx.service.CreateAdmin(context.Background(), &usecase.CreateAdminInput{
		Email:          "boss@example.com",
		Password:       "Password123!",
		AdminSecretKey: "",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRegistrationDenied)
}

func TestAccountService_CreateAdmin_DomainNotAllowed(t *testing.T) {
	fx := createTestAccountService(t, adminConfig("s3cret", "example.com"))

	_, err := fx.service.CreateAdmin(context.Background(), &usecase.CreateAdminInput{
		Email:          "boss@evil.io",
		Password:       "Password123!",
		AdminSecretKey: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRegistrationDenied)
}

func TestAccountService_CreateAdmin_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t, adminConfig("s3cret"))

	ctx := context.Background()
	existing := &entity.Account{ID: uuid.New(), Email: "boss@example.com"}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, existing.Email).
		Return(existing, nil)

	_, err := fx.service.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Email:          existing.Email,
		Password:       "Password123!",
		AdminSecretKey: "s3cret",
	})

	require.Error(t, err)
	// An existing email is an authorization failure, not a conflict.
	assert.ErrorIs(t, err, domainerrors.ErrAdminRegistrationDenied)
}

func TestAccountService_CreateMerchant_AtomicWithProfile(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := &usecase.CreateMerchantInput{
		Name:      "Shop Owner",
		Email:     "shop@example.com",
		Password:  "Password123!",
		StoreName: "The Shop",
		Location:  "Main St 1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					require.NotNil(t, account.MerchantProfile)
					account.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, input.Email, input.Name, mock.AnythingOfType("string")).
		Return(nil)

	account, err := fx.service.CreateMerchant(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleMerchant, account.Role)
	assert.False(t, account.IsVerified)
	assert.False(t, account.IsEmailVerified)
	require.NotNil(t, account.MerchantProfile)
	assert.Equal(t, input.StoreName, account.MerchantProfile.StoreName)
}

func TestAccountService_CreateMerchant_TransactionFailure(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	_, err := fx.service.CreateMerchant(ctx, &usecase.CreateMerchantInput{
		Email:     "shop@example.com",
		StoreName: "The Shop",
		Location:  "Main St 1",
	})

	require.Error(t, err)
}

func TestAccountService_SendVerificationEmail_OverwritesToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	oldExpiry := time.Now().Add(time.Hour)
	account := &entity.Account{
		ID:                 uuid.New(),
		Name:               "Test User",
		Email:              "user@example.com",
		Role:               entity.RoleUser,
		EmailVerifyToken:   "old-token",
		EmailVerifyExpires: &oldExpiry,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.NotEqual(t, "old-token", updated.EmailVerifyToken)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, account.Email, account.Name, mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.SendVerificationEmail(ctx, account.Email)

	require.NoError(t, err)
}

func TestAccountService_SendVerificationEmail_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.SendVerificationEmail(ctx, "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_SendVerificationEmail_MailerFailureKeepsToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  entity.RoleUser,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	// The token is persisted before the send; a mailer failure does not
	// revert it, so a retry simply overwrites.
	fx.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.mailer.EXPECT().
		SendVerificationEmail(ctx, account.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	err := fx.service.SendVerificationEmail(ctx, account.Email)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationFailed)
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	account := &entity.Account{
		ID:                 uuid.New(),
		Email:              "user@example.com",
		Role:               entity.RoleUser,
		EmailVerifyToken:   "valid-token",
		EmailVerifyExpires: &expiry,
	}

	fx.accountRepo.EXPECT().
		FindByVerificationToken(ctx, "valid-token", mock.AnythingOfType("time.Time")).
		Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.True(t, updated.IsEmailVerified)
			assert.Empty(t, updated.EmailVerifyToken)
			assert.Nil(t, updated.EmailVerifyExpires)
		}).
		Return(nil)

	verified, err := fx.service.VerifyEmail(ctx, "valid-token")

	require.NoError(t, err)
	assert.True(t, verified.IsEmailVerified)
}

func TestAccountService_VerifyEmail_InvalidOrExpiredToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByVerificationToken(ctx, "stale-token", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.VerifyEmail(ctx, "stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerifyToken)
}

func TestAccountService_VerifyUser_ApprovesMerchant(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Email: "shop@example.com",
		Role:  entity.RoleMerchant,
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.True(t, updated.IsVerified)
		}).
		Return(nil)

	verified, err := fx.service.VerifyUser(ctx, account.ID)

	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.True(t, verified.MeetsVerificationRequirement())
}

func TestAccountService_VerifyUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.VerifyUser(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_FindOrCreateSocialUser_CreatesNewAccount(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "social@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	account, err := fx.service.FindOrCreateSocialUser(ctx, "social@example.com", "Social User", entity.ProviderGoogle, "google-sub-1")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.Equal(t, entity.ProviderGoogle, account.Provider)
	assert.Equal(t, "google-sub-1", account.ProviderID)
	assert.True(t, account.IsVerified)
	assert.False(t, account.IsEmailVerified)
}

func TestAccountService_FindOrCreateSocialUser_IdempotentWhenLinked(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:         uuid.New(),
		Email:      "social@example.com",
		Role:       entity.RoleUser,
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	// No Update expected: the identity already matches.

	got, err := fx.service.FindOrCreateSocialUser(ctx, account.Email, "whatever", entity.ProviderGoogle, "google-sub-1")

	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
}

func TestAccountService_FindOrCreateSocialUser_RelinksIdentity(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "local@example.com",
		Role:     entity.RoleUser,
		Provider: entity.ProviderLocal,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.Equal(t, entity.ProviderGoogle, updated.Provider)
			assert.Equal(t, "google-sub-9", updated.ProviderID)
		}).
		Return(nil)

	got, err := fx.service.FindOrCreateSocialUser(ctx, account.Email, "whatever", entity.ProviderGoogle, "google-sub-9")

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, got.Provider)
}

func TestAccountService_Update_RehashesPassword(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Role:         entity.RoleUser,
		Provider:     entity.ProviderLocal,
		PasswordHash: "old_hash",
	}
	newPassword := "NewPassword123!"

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Hash(newPassword).Return("new_hash", nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	updated, err := fx.service.Update(ctx, account.ID, &usecase.UpdateAccountInput{Password: &newPassword})

	require.NoError(t, err)
	assert.Equal(t, "new_hash", updated.PasswordHash)
}

func TestAccountService_Remove_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleUser}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Delete(ctx, account.ID).Return(nil)

	err := fx.service.Remove(ctx, account.ID)

	require.NoError(t, err)
}

func TestAccountService_VerificationStatus(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	account := &entity.Account{
		ID:              uuid.New(),
		Email:           "shop@example.com",
		Role:            entity.RoleMerchant,
		IsVerified:      false,
		IsEmailVerified: true,
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	status, err := fx.service.VerificationStatus(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleMerchant, status.Role)
	assert.False(t, status.IsVerified)
	assert.True(t, status.IsEmailVerified)
	assert.False(t, status.MeetsRequirement)
}
