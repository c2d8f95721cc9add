package qrcode

import (
	"encoding/json"
	"testing"

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

func TestQRCodeService_GenerateEmergencyCardQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateEmergencyCardQR("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateEmergencyCardQR_DifferentSizes(t *testing.T) {
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

			qrBytes, err := service.GenerateEmergencyCardQR("user-1")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestParseEmergencyCardQR(t *testing.T) {
	data := QRCodeData{
		Type:   "emergency_card",
		UserID: "user-1",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	userID, err := ParseEmergencyCardQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseEmergencyCardQR_InvalidJSON(t *testing.T) {
	_, err := ParseEmergencyCardQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestParseEmergencyCardQR_InvalidType(t *testing.T) {
	data := QRCodeData{
		Type:   "subscription",
		UserID: "user-1",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = ParseEmergencyCardQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestParseEmergencyCardQR_MissingUserID(t *testing.T) {
	data := QRCodeData{Type: "emergency_card"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = ParseEmergencyCardQR(string(jsonData))
	assert.Error(t, err)
}
