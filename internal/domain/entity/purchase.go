// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchasePeriod selects the time window for purchase history queries.
type PurchasePeriod string

const (
	// PeriodAll returns the complete purchase history.
	PeriodAll PurchasePeriod = "all"
	// PeriodMonth returns purchases from the current calendar month.
	PeriodMonth PurchasePeriod = "month"
	// PeriodYear returns purchases from the current calendar year.
	PeriodYear PurchasePeriod = "year"
)

// IsValid checks if the PurchasePeriod is a known value.
func (p PurchasePeriod) IsValid() bool {
	switch p {
	case PeriodAll, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// Purchase is an append-only ledger entry counting toward the customer's reward progress.
// Entries created through code redemption carry the redeemed code as TransactionID and
// are marked verified.
type Purchase struct {
	ID            uuid.UUID
	UserID        uuid.UUID // The customer this purchase belongs to.
	TransactionID string    // External reference; the loyalty code itself for redemptions.
	Amount        float64   // Purchase amount. Zero for redemption-created entries.
	Verified      bool      // True when the purchase was proven by a staff-issued code.
	PurchasedAt   time.Time // When the purchase happened, as stated at redemption.
	CreatedAt     time.Time
}
