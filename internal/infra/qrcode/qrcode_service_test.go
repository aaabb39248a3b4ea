package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRewardQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	rewardID := uuid.New()
	userID := uuid.New()

	qrBytes, err := service.GenerateRewardQR(rewardID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateRewardQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateRewardQR(uuid.New(), uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseRewardQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	rewardID := uuid.New()
	userID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		RewardID: rewardID.String(),
		UserID:   userID.String(),
		Type:     "reward",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	parsedRewardID, parsedUserID, err := service.ParseRewardQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, rewardID, parsedRewardID)
	assert.Equal(t, userID, parsedUserID)
}

func TestQRCodeService_ParseRewardQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseRewardQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseRewardQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid type
	data := QRCodeData{
		RewardID: uuid.New().String(),
		UserID:   uuid.New().String(),
		Type:     "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseRewardQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseRewardQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid reward ID
	data := QRCodeData{
		RewardID: "not-a-valid-uuid",
		UserID:   uuid.New().String(),
		Type:     "reward",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseRewardQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse reward ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	originalRewardID := uuid.New()
	originalUserID := uuid.New()

	// Generate QR code
	qrBytes, err := service.GenerateRewardQR(originalRewardID, originalUserID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Note: We can't directly parse the PNG bytes back to JSON
	// In real usage, the QR code would be scanned by a device
	// and the JSON string would be extracted
	// For testing, we verify the data structure manually
	data := QRCodeData{
		RewardID: originalRewardID.String(),
		UserID:   originalUserID.String(),
		Type:     "reward",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedRewardID, parsedUserID, err := service.ParseRewardQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalRewardID, parsedRewardID)
	assert.Equal(t, originalUserID, parsedUserID)
}
