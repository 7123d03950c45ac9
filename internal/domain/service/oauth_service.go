package service

import (
	"context"

	"accounts/internal/domain/entity"
)

// OAuthProfile represents the normalized user information returned by an
// OAuth identity provider.
type OAuthProfile struct {
	ID            string          // Provider-specific subject id (e.g., Google's 'sub' claim)
	Emails        []string        // Zero or more email addresses exposed by the provider
	DisplayName   string          // Display name, may be empty
	Provider      entity.Provider // The OAuth provider
	AvatarURL     string          // URL to the user's profile picture
	EmailVerified bool            // Whether the provider vouches for the email
}

// OAuthVerifier defines the interface for OAuth ID token verification
// (like Google Sign-In, where the client sends an ID token directly).
type OAuthVerifier interface {
	// VerifyIDToken verifies an OAuth ID token and returns the normalized profile.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthProfile, error)

	// Provider returns the OAuth provider this verifier handles.
	Provider() entity.Provider
}
