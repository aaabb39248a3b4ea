// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reward persistence.
var (
	// ErrRewardNotFound is returned when no reward matches the lookup.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrActiveRewardExists is returned when inserting a second unclaimed
	// reward for the same user.
	ErrActiveRewardExists = errors.New("user already has an active reward")
)

// RewardRepository defines the operations for reward persistence.
type RewardRepository interface {
	// Create persists a newly earned reward. The storage enforces at most one
	// unclaimed reward per user; Create returns ErrActiveRewardExists when
	// that invariant would be violated.
	Create(ctx context.Context, reward *entity.Reward) error

	// FindByID retrieves a reward by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)

	// FindActiveByUser retrieves the user's unclaimed reward, if any.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Reward, error)

	// FindLatestByUser retrieves the user's most recent reward regardless of state.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Reward, error)

	// Claim stamps the reward as handed over. The update is guarded by
	// claimed_at IS NULL; claiming an already-claimed reward affects no rows
	// and returns nil so the operation stays idempotent. A missing reward
	// returns ErrRewardNotFound.
	Claim(ctx context.Context, id uuid.UUID, claimedAt time.Time) error

	// ListActive returns all unclaimed rewards joined with the owning
	// customer's name and email, newest first.
	ListActive(ctx context.Context) ([]*entity.ActiveReward, error)
}
