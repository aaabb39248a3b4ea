package service

import (
	"context"
	"time"
)

// Loyalty event types published on state transitions.
const (
	EventCodeRedeemed  = "code_redeemed"
	EventRewardIssued  = "reward_issued"
	EventRewardClaimed = "reward_claimed"
)

// LoyaltyEvent describes a loyalty state transition for downstream consumers.
type LoyaltyEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Code       string    `json:"code,omitempty"`
	RewardID   string    `json:"reward_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoyaltyEvent publishes a loyalty event for async processing.
	// Publishing is best effort; callers must not fail the business operation
	// on publish errors.
	PublishLoyaltyEvent(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
