// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodeLength is the fixed length of a loyalty code.
const CodeLength = 6

// CodeCharset is the alphabet loyalty codes are drawn from.
const CodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// LoyaltyCode is a single-use purchase voucher issued by staff to a customer email.
// A code transitions exactly once from unused (UsedAt nil) to used; once used it
// records which account redeemed it and when.
type LoyaltyCode struct {
	ID        uuid.UUID  // The unique ID for this code record.
	Code      string     // The 6-character uppercase [A-Z0-9] code handed to the customer.
	Email     string     // The customer email this code was issued for. Redemption must match it.
	CreatedBy *uuid.UUID // The staff account that issued the code, when known.
	CreatedAt time.Time
	UsedAt    *time.Time // Set exactly once, at redemption time.
	UsedBy    *uuid.UUID // The customer account that redeemed the code.
}

// IsUsed reports whether the code has already been redeemed.
func (c *LoyaltyCode) IsUsed() bool {
	return c.UsedAt != nil
}
