package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for reward verification QR codes.
// The customer shows the code in store; staff scan it to confirm which reward
// and account they are handing over.
type QRCodeService interface {
	// GenerateRewardQR generates a PNG QR code identifying a reward and its owner.
	GenerateRewardQR(rewardID, userID uuid.UUID) ([]byte, error)

	// ParseRewardQR parses QR code data and returns the reward and user IDs.
	ParseRewardQR(qrData string) (rewardID, userID uuid.UUID, err error)
}
