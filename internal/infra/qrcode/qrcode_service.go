package qrcode

import (
	"encoding/json"
	"fmt"

	"marzan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RewardID string `json:"reward_id"`
	UserID   string `json:"user_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRewardQR generates a PNG QR code identifying a reward and its owner
func (s *qrcodeService) GenerateRewardQR(rewardID, userID uuid.UUID) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		RewardID: rewardID.String(),
		UserID:   userID.String(),
		Type:     "reward",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRewardQR parses QR code data and returns the reward and user IDs
func (s *qrcodeService) ParseRewardQR(qrData string) (uuid.UUID, uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "reward" {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUIDs
	rewardID, err := uuid.Parse(data.RewardID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse reward ID: %w", err)
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	return rewardID, userID, nil
}
