package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createUserRequest is the payload for public account creation. The endpoint
// only ever creates local USER accounts; privileged roles have their own
// gated endpoints and federated identities go through the OAuth login flow.
type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// createAdminRequest is the payload for administrator registration.
type createAdminRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	AdminSecretKey string `json:"admin_secret_key" validate:"required"`
}

// createMerchantRequest is the payload for merchant registration.
type createMerchantRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	StoreName   string `json:"store_name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	StoreNumber string `json:"store_number"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

// updateUserRequest is a partial update; absent fields stay untouched.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=USER MERCHANT ADMIN"`
}

// UserHandler holds dependencies for account management handlers.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(accountUC usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		accountUC: accountUC,
		logger:    logger,
	}
}

// CreateUser handles public account creation. The role and provider are
// fixed to USER / LOCAL regardless of what the request body carries.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.RoleUser,
		Provider: entity.ProviderLocal,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Account created successfully")
}

// CreateAdmin handles administrator registration gated by the admin secret.
func (h *UserHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountUC.CreateAdmin(c.Request().Context(), &usecase.CreateAdminInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		AdminSecretKey: req.AdminSecretKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Admin account created successfully")
}

// CreateMerchant handles merchant registration with a store profile.
func (h *UserHandler) CreateMerchant(c echo.Context) error {
	var req createMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountUC.CreateMerchant(c.Request().Context(), &usecase.CreateMerchantInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		StoreName:   req.StoreName,
		Location:    req.Location,
		StoreNumber: req.StoreNumber,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Merchant account created successfully")
}

// List returns every account, with profiles when include_profile=true.
func (h *UserHandler) List(c echo.Context) error {
	includeProfile := c.QueryParam("include_profile") == "true"

	accounts, err := h.accountUC.List(c.Request().Context(), includeProfile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponses(accounts), "Accounts retrieved successfully")
}

// Get returns one account by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	account, err := h.accountUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account retrieved successfully")
}

// Update applies a partial update to an account.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	account, err := h.accountUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account updated successfully")
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.accountUC.Remove(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// Verify flips the business-verification flag, approving a merchant.
func (h *UserHandler) Verify(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	account, err := h.accountUC.VerifyUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account verified successfully")
}

// VerificationStatus reports the verification pair for an account.
func (h *UserHandler) VerificationStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	status, err := h.accountUC.VerificationStatus(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Verification status retrieved successfully")
}
