// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

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

// verifyTokenTTL is the lifetime of an email-verification token.
const verifyTokenTTL = 24 * time.Hour

// verifyTokenBytes is the entropy of a verification token (256 bits hex-encoded).
const verifyTokenBytes = 32

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	mailer      service.Mailer
	publisher   service.EventPublisher
	admin       *config.AdminConfig
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Mailer      service.Mailer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var admin *config.AdminConfig
	if params.Config != nil {
		admin = params.Config.Admin
	}

	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		admin:       admin,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser creates an account with role-dependent verification defaults.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.Account, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	provider := input.Provider
	if provider == "" {
		provider = entity.ProviderLocal
	}
	if !role.IsValid() || !provider.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role or provider")
	}

	srv.log(ctx).Info("Creating account", slog.String("email", input.Email), slog.Any("role", role))

	account := &entity.Account{
		Name:       input.Name,
		Email:      input.Email,
		Role:       role,
		Provider:   provider,
		ProviderID: input.ProviderID,
	}
	applyVerificationDefaults(account)

	if provider.IsLocal() && input.Password != "" {
		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during account creation")
		}
		account.PasswordHash = hashed
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	// Email proof is required for every non-admin role. A notifier failure
	// must not undo the already-created account; a retried
	// SendVerificationEmail overwrites the token.
	if role != entity.RoleAdmin {
		if err := srv.issueVerification(ctx, account); err != nil {
			srv.log(ctx).Warn("Verification email dispatch failed after account creation",
				slog.String("email", account.Email), slog.Any("error", err))
		}
	}

	srv.publish(ctx, service.EventAccountCreated, account)
	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

// CreateAdmin registers an administrator gated by the configured secret key
// and optional email-domain allowlist.
func (srv *accountService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Account, error) {
	srv.log(ctx).Info("Admin registration attempt", slog.String("email", input.Email))

	if srv.admin == nil || srv.admin.SecretKey == "" || input.AdminSecretKey != srv.admin.SecretKey {
		return nil, domainerrors.ErrAdminRegistrationDenied.WrapMessage("admin secret key mismatch")
	}

	if !srv.adminDomainAllowed(input.Email) {
		return nil, domainerrors.ErrAdminRegistrationDenied.WrapMessage("email domain is not in the admin allowlist")
	}

	// Checked explicitly: an already-registered email is an authorization
	// failure here, not a plain conflict.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAdminRegistrationDenied.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing admin email")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash admin password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
		Provider:     entity.ProviderLocal,
	}
	applyVerificationDefaults(account)

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create admin account")
	}

	srv.publish(ctx, service.EventAccountCreated, account)
	srv.log(ctx).Debug("Admin account created", slog.Any("accountID", account.ID))

	return account, nil
}

// CreateMerchant atomically creates a merchant account together with its
// store profile. No reader can observe one without the other.
func (srv *accountService) CreateMerchant(ctx context.Context, input *usecase.CreateMerchantInput) (*entity.Account, error) {
	provider := input.Provider
	if provider == "" {
		provider = entity.ProviderLocal
	}
	if !provider.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown provider")
	}

	srv.log(ctx).Info("Creating merchant account", slog.String("email", input.Email), slog.String("storeName", input.StoreName))

	account := &entity.Account{
		Name:       input.Name,
		Email:      input.Email,
		Role:       entity.RoleMerchant,
		Provider:   provider,
		ProviderID: input.ProviderID,
		MerchantProfile: &entity.MerchantProfile{
			StoreName:   input.StoreName,
			Location:    input.Location,
			StoreNumber: input.StoreNumber,
			PhoneNumber: input.PhoneNumber,
			Description: input.Description,
		},
	}
	applyVerificationDefaults(account)

	if provider.IsLocal() && input.Password != "" {
		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during merchant creation")
		}
		account.PasswordHash = hashed
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute merchant creation transaction",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute merchant creation transaction")
	}

	// Email ownership proof is still required even though business approval
	// is a separate administrative step.
	if err := srv.issueVerification(ctx, account); err != nil {
		srv.log(ctx).Warn("Verification email dispatch failed after merchant creation",
			slog.String("email", account.Email), slog.Any("error", err))
	}

	srv.publish(ctx, service.EventAccountCreated, account)
	srv.log(ctx).Debug("Merchant account created", slog.Any("accountID", account.ID))

	return account, nil
}

// SendVerificationEmail issues a fresh token for the account with the given
// email, overwriting any outstanding one, and dispatches the message.
// A retried call after a notifier failure safely overwrites the token.
func (srv *accountService) SendVerificationEmail(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("no account for verification email")
		}

		return errors.Wrap(err, "failed to find account for verification email")
	}

	return srv.issueVerification(ctx, account)
}

// issueVerification persists a fresh verification token on the account and
// invokes the mailer. The token stays persisted even when the mailer fails.
func (srv *accountService) issueVerification(ctx context.Context, account *entity.Account) error {
	token, err := generateVerifyToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}

	expires := time.Now().Add(verifyTokenTTL)
	account.EmailVerifyToken = token
	account.EmailVerifyExpires = &expires

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist verification token")
	}

	displayName := account.Name
	if displayName == "" {
		displayName = "User"
	}

	if err := srv.mailer.SendVerificationEmail(ctx, account.Email, displayName, token); err != nil {
		srv.log(ctx).Error("Mailer failed to dispatch verification email",
			slog.String("email", account.Email), slog.Any("error", err))

		return domainerrors.ErrNotificationFailed.WrapMessage("verification email dispatch failed")
	}

	srv.log(ctx).Info("Verification email dispatched", slog.String("email", account.Email))

	return nil
}

// VerifyEmail consumes a single-use verification token. The token-match
// predicate is the concurrency guard: a consumed token never matches again.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByVerificationToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Wrong and expired tokens are indistinguishable to the caller.
			return nil, domainerrors.ErrInvalidVerifyToken.WrapMessage("email verification failed")
		}

		return nil, errors.Wrap(err, "failed to look up verification token")
	}

	account.ClearVerificationToken()
	account.IsEmailVerified = true

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist email verification")
	}

	srv.log(ctx).Info("Email verified", slog.Any("accountID", account.ID))

	return account, nil
}

// VerifyUser flips the business-verification flag. This is the only path that
// approves a merchant.
func (srv *accountService) VerifyUser(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("cannot verify missing account")
		}

		return nil, errors.Wrap(err, "failed to find account for verification")
	}

	account.IsVerified = true

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist account verification")
	}

	if account.Role == entity.RoleMerchant {
		srv.publish(ctx, service.EventMerchantVerified, account)
	}
	srv.log(ctx).Info("Account verified by administrator", slog.Any("accountID", account.ID))

	return account, nil
}

// FindOrCreateSocialUser federates an external identity into an account by
// email match. An existing account's provider identity is re-linked when it
// differs; the call is idempotent when it already matches.
func (srv *accountService) FindOrCreateSocialUser(ctx context.Context, email, name string, provider entity.Provider, providerID string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		newAccount := &entity.Account{
			Name:       name,
			Email:      email,
			Role:       entity.RoleUser,
			Provider:   provider,
			ProviderID: providerID,
		}
		applyVerificationDefaults(newAccount)

		if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
			return nil, errors.Wrap(err, "failed to create social account")
		}

		srv.publish(ctx, service.EventAccountCreated, newAccount)
		srv.log(ctx).Info("Social account created", slog.Any("accountID", newAccount.ID), slog.Any("provider", provider))

		return newAccount, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for social login")
	}

	// Idempotent when the federated identity already matches: no second write.
	if account.Provider == provider && account.ProviderID == providerID {
		return account, nil
	}

	account.Provider = provider
	account.ProviderID = providerID

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to re-link provider identity")
	}

	srv.log(ctx).Info("Provider identity re-linked", slog.Any("accountID", account.ID), slog.Any("provider", provider))

	return account, nil
}

// Get retrieves a single account by id.
func (srv *accountService) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// List retrieves all accounts.
func (srv *accountService) List(ctx context.Context, includeProfile bool) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx, includeProfile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// VerificationStatus reports the verification pair and the business gate.
func (srv *accountService) VerificationStatus(ctx context.Context, id uuid.UUID) (*usecase.VerificationStatus, error) {
	account, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.VerificationStatus{
		AccountID:        account.ID,
		Role:             account.Role,
		IsVerified:       account.IsVerified,
		IsEmailVerified:  account.IsEmailVerified,
		MeetsRequirement: account.MeetsVerificationRequirement(),
	}, nil
}

// Update applies a partial update to an account.
func (srv *accountService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("cannot update missing account")
		}

		return nil, errors.Wrap(err, "failed to find account for update")
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Email != nil {
		account.Email = *input.Email
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
		account.Role = *input.Role
	}
	if input.Password != nil && account.Provider.IsLocal() {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during update")
		}
		account.PasswordHash = hashed
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("accountID", account.ID))

	return account, nil
}

// Remove deletes an account, cascading its merchant profile.
func (srv *accountService) Remove(ctx context.Context, id uuid.UUID) error {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("cannot delete missing account")
		}

		return errors.Wrap(err, "failed to find account for deletion")
	}

	if err := srv.accountRepo.Delete(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.publish(ctx, service.EventAccountDeleted, account)
	srv.log(ctx).Info("Account deleted", slog.Any("accountID", account.ID))

	return nil
}

// adminDomainAllowed checks the email's domain against the allowlist.
// An empty allowlist permits any domain.
func (srv *accountService) adminDomainAllowed(email string) bool {
	if srv.admin == nil || len(srv.admin.AllowedDomains) == 0 {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]

	for _, allowed := range srv.admin.AllowedDomains {
		if strings.EqualFold(domain, allowed) {
			return true
		}
	}

	return false
}

// publish emits an account lifecycle event. Publishing is best effort and
// never fails the triggering operation.
func (srv *accountService) publish(ctx context.Context, eventType string, account *entity.Account) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		AccountID: account.ID.String(),
		Email:     account.Email,
		Role:      account.Role.String(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType), slog.Any("accountID", account.ID), slog.Any("error", err))
	}
}

// applyVerificationDefaults sets the verification pair for a freshly created
// account: admins need no proof at all, users are auto-approved but must
// prove email ownership, merchants need both email proof and admin approval.
func applyVerificationDefaults(account *entity.Account) {
	switch account.Role {
	case entity.RoleAdmin:
		account.IsVerified = true
		account.IsEmailVerified = true
	case entity.RoleMerchant:
		account.IsVerified = false
		account.IsEmailVerified = false
	default:
		account.IsVerified = true
		account.IsEmailVerified = false
	}
}

// generateVerifyToken returns a hex token with verifyTokenBytes of entropy.
func generateVerifyToken() (string, error) {
	buf := make([]byte, verifyTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
