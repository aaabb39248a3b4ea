package usecase

import (
	"context"
	"time"

	"marzan/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RedeemCodeInput defines the data required to redeem a loyalty code.
type RedeemCodeInput struct {
	UserID uuid.UUID
	Code   string

	// PurchaseDate is when the purchase happened, as reported by the
	// customer. Zero means the purchase is dated at redemption time.
	PurchaseDate time.Time
}

// HistoryInput selects which slice of the purchase ledger to return.
type HistoryInput struct {
	UserID uuid.UUID
	Period entity.PurchasePeriod
}

// --- Output DTOs ---

// RedeemCodeOutput reports the result of a redemption.
type RedeemCodeOutput struct {
	Purchase *entity.Purchase

	// Reward is set when this redemption completed a loyalty card.
	Reward *entity.Reward

	// PurchaseCount is the ledger size after this redemption.
	PurchaseCount int64
}

// ProgressOutput describes how far a customer is on the current card.
type ProgressOutput struct {
	PurchaseCount int64

	// CurrentStamps is PurchaseCount modulo the reward threshold.
	CurrentStamps int64

	// Threshold is the number of stamps that completes a card.
	Threshold int64

	// RewardStatus is pending, available, or claimed.
	RewardStatus entity.RewardStatus

	// ActiveReward is the unclaimed reward, if any.
	ActiveReward *entity.Reward
}

// LoyaltyUsecase defines the interface for customer loyalty operations.
type LoyaltyUsecase interface {
	// Redeem validates and consumes a loyalty code, appends a purchase to the
	// ledger, and issues a reward when the purchase count reaches a multiple
	// of the threshold.
	Redeem(ctx context.Context, input *RedeemCodeInput) (*RedeemCodeOutput, error)

	// Progress reports the customer's stamp count and active reward.
	Progress(ctx context.Context, userID uuid.UUID) (*ProgressOutput, error)

	// History lists the customer's purchases for the selected period.
	History(ctx context.Context, input *HistoryInput) ([]*entity.Purchase, error)

	// RewardQR renders the PNG QR code for the customer's active reward.
	RewardQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
