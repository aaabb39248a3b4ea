// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marzan/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves an authentication record by provider and provider user ID.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new authentication record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
