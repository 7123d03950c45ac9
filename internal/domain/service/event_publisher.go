package service

import (
	"context"
)

// Account lifecycle event types published to downstream services.
const (
	EventAccountCreated   = "account.created"
	EventMerchantVerified = "merchant.verified"
	EventAccountDeleted   = "account.deleted"
)

// AccountEvent represents an account lifecycle event consumed by other
// services in the platform (e.g., catalog enabling a verified merchant).
type AccountEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
