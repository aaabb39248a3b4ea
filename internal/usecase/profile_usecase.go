package usecase

import (
	"context"

	"marzan/internal/domain/entity"
	"marzan/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	UserID       uuid.UUID
	Name         string
	Phone        string
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// ProfileUsecase defines the interface for customer profile operations.
type ProfileUsecase interface {
	// Get retrieves the profile. Accounts that predate the structured address
	// fields have their legacy single-line address parsed into them on read.
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Update saves the profile and keeps the legacy single-line address in
	// sync with the structured fields.
	Update(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// LookupCEP resolves a postal code for address autofill.
	LookupCEP(ctx context.Context, cep string) (*service.PostalAddress, error)
}
