package impl

import (
	"context"
	"log/slog"
	"strings"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountUsecase usecase.AccountUsecase
	accountRepo    repository.AccountRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	googleVerifier service.OAuthVerifier
	serviceTokens  map[string]string
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountUsecase usecase.AccountUsecase
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	GoogleVerifier service.OAuthVerifier `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var serviceTokens map[string]string
	if params.Config != nil {
		serviceTokens = params.Config.ServiceTokens
	}

	return &authService{
		accountUsecase: params.AccountUsecase,
		accountRepo:    params.AccountRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		googleVerifier: params.GoogleVerifier,
		serviceTokens:  serviceTokens,
		logger:         params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local user account and immediately issues a session.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	account, err := srv.accountUsecase.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleUser,
		Provider: entity.ProviderLocal,
	})
	if err != nil {
		return nil, err
	}

	return srv.IssueSession(ctx, account)
}

// Login validates local credentials. An unknown email, a non-local account
// and a wrong password all fail with the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed: unknown email")
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !account.CanAuthenticateLocally() {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed: account has no local credential")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed: password mismatch")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID))

	return srv.IssueSession(ctx, account)
}

// GoogleLogin verifies a Google ID token and logs the resulting profile in.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.SessionOutput, error) {
	if srv.googleVerifier == nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in is not configured")
	}

	profile, err := srv.googleVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google id token verification failed")
	}

	return srv.OAuthLogin(ctx, profile)
}

// OAuthLogin federates an already-verified OAuth profile into an account and
// issues a session. A profile without an email cannot be matched to an
// account and is rejected.
func (srv *authService) OAuthLogin(ctx context.Context, profile *service.OAuthProfile) (*usecase.SessionOutput, error) {
	if profile == nil || len(profile.Emails) == 0 || profile.Emails[0] == "" {
		return nil, domainerrors.ErrOAuthEmailMissing.WrapMessage("oauth profile carries no email")
	}

	email := profile.Emails[0]
	name := profile.DisplayName
	if name == "" {
		// Fall back to the mailbox name when the provider sends no display name.
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	account, err := srv.accountUsecase.FindOrCreateSocialUser(ctx, email, name, profile.Provider, profile.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("OAuth login succeeded",
		slog.Any("accountID", account.ID), slog.Any("provider", profile.Provider))

	return srv.IssueSession(ctx, account)
}

// IssueSession signs session claims for the account. Beside the primary
// access token it mints one auxiliary token per configured downstream
// service, each signed with that service's own secret.
func (srv *authService) IssueSession(ctx context.Context, account *entity.Account) (*usecase.SessionOutput, error) {
	claims := service.SessionClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
	}

	accessToken, err := srv.tokenService.Sign(claims)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage("failed to sign session token")
	}

	var serviceTokens map[string]string
	if len(srv.serviceTokens) > 0 {
		serviceTokens = make(map[string]string, len(srv.serviceTokens))
		for name, secret := range srv.serviceTokens {
			token, err := srv.tokenService.SignWithSecret(claims, secret)
			if err != nil {
				return nil, domainerrors.ErrTokenSigningFailed.WrapMessage("failed to sign token for service " + name)
			}
			serviceTokens[name] = token
		}
	}

	return &usecase.SessionOutput{
		User: usecase.SessionUser{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
			Role:  account.Role,
		},
		AccessToken:   accessToken,
		ServiceTokens: serviceTokens,
	}, nil
}

// Profile returns the account behind an authenticated session subject.
func (srv *authService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("session subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session profile")
	}

	return account, nil
}
