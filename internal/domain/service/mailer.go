package service

import "context"

// Mailer defines the outbound notification capability the account lifecycle
// depends on. A failure must be distinguishable from success so the caller
// can surface a notification error.
type Mailer interface {
	// SendVerificationEmail dispatches an email-verification message carrying
	// a link built from the given single-use token.
	SendVerificationEmail(ctx context.Context, toEmail, displayName, token string) error
}
