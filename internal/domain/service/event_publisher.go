package service

import (
	"context"
	"time"
)

// AccountRegisteredEvent is published once a registration completes
type AccountRegisteredEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	BusinessID  string    `json:"business_id,omitempty"`
	BusinessKey string    `json:"business_key,omitempty"`
	County      string    `json:"county,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountRegistered publishes a registration event. Delivery is fire-and-forget.
	PublishAccountRegistered(ctx context.Context, event *AccountRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
