package usecase

import (
	"context"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GenerateCodeInput defines the data required to issue a loyalty code.
type GenerateCodeInput struct {
	// Email is the customer address the code is bound to.
	Email string

	// AdminID identifies the staff member issuing the code.
	AdminID uuid.UUID
}

// WhatsAppShareInput defines the data required to build a share link.
type WhatsAppShareInput struct {
	CodeID uuid.UUID
	Phone  string
}

// --- Output DTOs ---

// GenerateCodeOutput returns the issued code.
type GenerateCodeOutput struct {
	Code *entity.LoyaltyCode

	// EmailQueued reports whether the delivery task was enqueued. Issuance
	// succeeds even when queueing fails; staff can resend or share manually.
	EmailQueued bool
}

// AdminUsecase defines the interface for staff-facing operations.
type AdminUsecase interface {
	// GenerateCode issues a fresh single-use code bound to a customer email
	// and queues its delivery.
	GenerateCode(ctx context.Context, input *GenerateCodeInput) (*GenerateCodeOutput, error)

	// ResendCode re-queues the delivery email for an existing unused code.
	ResendCode(ctx context.Context, codeID uuid.UUID) error

	// WhatsAppShareLink builds a wa.me link pre-filled with the code message.
	WhatsAppShareLink(ctx context.Context, input *WhatsAppShareInput) (string, error)

	// ListCodes returns all issued codes, newest first.
	ListCodes(ctx context.Context) ([]*entity.LoyaltyCode, error)

	// ListUsers searches registered customers by name or email.
	ListUsers(ctx context.Context, query string) ([]*entity.User, error)

	// ActiveRewards lists all unclaimed rewards with their owners.
	ActiveRewards(ctx context.Context) ([]*entity.ActiveReward, error)

	// ClaimReward marks a reward as handed over. Claiming an already-claimed
	// reward is a no-op.
	ClaimReward(ctx context.Context, rewardID uuid.UUID) error
}
