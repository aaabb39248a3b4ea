// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RewardTypeCookieBox is the reward granted when a customer completes a card.
const RewardTypeCookieBox = "Caixa Premium de Cookies"

// RewardThreshold is the number of verified purchases that completes a loyalty card.
const RewardThreshold = 10

// RewardStatus describes where a customer stands in the reward cycle.
type RewardStatus string

const (
	// RewardStatusPending means the customer has never earned a reward.
	RewardStatusPending RewardStatus = "pending"
	// RewardStatusAvailable means an unclaimed reward is waiting for the customer.
	RewardStatusAvailable RewardStatus = "available"
	// RewardStatusClaimed means the latest reward has been handed over in store.
	RewardStatusClaimed RewardStatus = "claimed"
)

// Reward is earned automatically on every tenth verified purchase and claimed in
// store by staff. A customer holds at most one unclaimed reward at a time.
type Reward struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RewardType string     // What the customer gets, e.g. "Caixa Premium de Cookies".
	ExpiryDate time.Time  // Informational validity date shown to the customer.
	ClaimedAt  *time.Time // Set once, when staff hands the reward over.
	CreatedAt  time.Time
}

// IsClaimed reports whether the reward was already handed over.
func (r *Reward) IsClaimed() bool {
	return r.ClaimedAt != nil
}

// ActiveReward is a reward pending pickup, joined with the owning customer for
// the admin listing.
type ActiveReward struct {
	Reward
	UserName  string
	UserEmail string
}
