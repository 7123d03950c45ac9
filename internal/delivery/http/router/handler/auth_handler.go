package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload for local self-registration.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is the payload for a local credential login.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// googleLoginRequest carries the ID token posted by a Google Sign-In client.
type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// sendVerificationRequest asks for a fresh verification email.
type sendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, accountUC usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:    authUC,
		accountUC: accountUC,
		logger:    logger,
	}
}

// Register handles local user self-registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the local credential login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GoogleLogin handles a Google Sign-In ID token login.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Google authentication successful")
}

// Profile returns the account behind the authenticated session.
func (h *AuthHandler) Profile(c echo.Context) error {
	accountID, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.authUC.Profile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Profile retrieved successfully")
}

// SendVerificationEmail issues a fresh verification token and dispatches it.
func (h *AuthHandler) SendVerificationEmail(c echo.Context) error {
	var req sendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.accountUC.SendVerificationEmail(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent")
}

// VerifyEmail consumes a verification token from the emailed link.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Verification token is required")
	}

	account, err := h.accountUC.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Email verified successfully")
}
