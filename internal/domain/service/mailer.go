package service

import "context"

// Mailer sends transactional email to customers.
type Mailer interface {
	// SendLoyaltyCode delivers the loyalty code email to the given address.
	SendLoyaltyCode(ctx context.Context, email, code string) error
}
