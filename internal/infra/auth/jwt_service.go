// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
)

// defaultSessionTTL is used when no token lifetime is configured.
const defaultSessionTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    ttl,
	}, nil
}

// Sign creates a session token signed with the service's own secret.
func (s *jwtService) Sign(claims service.SessionClaims) (string, error) {
	return s.signWith(claims, s.secret)
}

// SignWithSecret creates a token signed with the supplied secret. Used to
// mint auxiliary tokens for downstream services that verify with their own key.
func (s *jwtService) SignWithSecret(claims service.SessionClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret must not be empty")
	}

	return s.signWith(claims, secret)
}

// Validate checks a session token's signature and expiry and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims format")
	}

	sub, _ := mapClaims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "session subject is not a valid uuid")
	}

	email, _ := mapClaims["email"].(string)
	roleStr, _ := mapClaims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.Errorf("session carries unknown role %q", roleStr)
	}

	return &service.SessionClaims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
	}, nil
}

// signWith creates a JWT with the session claims and the given secret.
func (s *jwtService) signWith(claims service.SessionClaims, secret string) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":   claims.AccountID.String(), // Subject (who the token is for)
		"email": claims.Email,              // Account email
		"role":  claims.Role.String(),      // Role for stateless authorization
		"iat":   now.Unix(),                // Issued At
		"exp":   now.Add(s.ttl).Unix(),     // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)

	return token.SignedString([]byte(secret))
}
