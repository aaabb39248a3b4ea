// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for loyalty code persistence.
var (
	// ErrCodeNotFound is returned when no loyalty code matches the lookup.
	ErrCodeNotFound = errors.New("loyalty code not found")
	// ErrDuplicateCode is returned when inserting a code that already exists.
	ErrDuplicateCode = errors.New("loyalty code already exists")
)

// LoyaltyCodeRepository defines the operations for loyalty code persistence.
type LoyaltyCodeRepository interface {
	// Create persists a newly issued code. Returns ErrDuplicateCode when the
	// generated code collides with an existing one.
	Create(ctx context.Context, code *entity.LoyaltyCode) error

	// FindByID retrieves a code by its record ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCode, error)

	// FindByCodeForUpdate retrieves a code by its value, locking the row for
	// the duration of the surrounding transaction.
	FindByCodeForUpdate(ctx context.Context, code string) (*entity.LoyaltyCode, error)

	// MarkUsed stamps the code as redeemed. The update is guarded by
	// used_at IS NULL; it returns ErrCodeNotFound when the guard fails so the
	// caller can treat a lost race as an already-used code.
	MarkUsed(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, usedAt time.Time) error

	// List returns all issued codes, newest first.
	List(ctx context.Context) ([]*entity.LoyaltyCode, error)
}
