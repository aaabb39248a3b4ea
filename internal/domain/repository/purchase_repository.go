// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the operations for the purchase ledger.
// The ledger is append-only; there are no update or delete operations.
type PurchaseRepository interface {
	// Create appends a purchase to the ledger.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// CountByUser returns the total number of ledger entries for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListByUser returns the user's purchases within the period, newest first.
	// Month and year periods compare calendar fields against the current date,
	// not elapsed durations.
	ListByUser(ctx context.Context, userID uuid.UUID, period entity.PurchasePeriod) ([]*entity.Purchase, error)
}
