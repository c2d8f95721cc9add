package qrcode

import (
	"encoding/json"
	"fmt"

	"lifeline/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload for an emergency card.
type QRCodeData struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

const emergencyCardType = "emergency_card"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L", "low":
		level = qrcode.Low
	case "M", "medium":
		level = qrcode.Medium
	case "Q", "high":
		level = qrcode.High
	case "H", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEmergencyCardQR generates the PNG QR code encoding the card
// owner's identity as a JSON payload.
func (s *qrcodeService) GenerateEmergencyCardQR(userID string) ([]byte, error) {
	data := QRCodeData{
		Type:   emergencyCardType,
		UserID: userID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseEmergencyCardQR parses a scanned payload and returns the owner's
// user ID.
func ParseEmergencyCardQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != emergencyCardType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.UserID == "" {
		return "", fmt.Errorf("QR code missing user id")
	}

	return data.UserID, nil
}
