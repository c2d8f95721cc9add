package service

// QRCodeService renders QR code images for emergency cards.
type QRCodeService interface {
	// GenerateEmergencyCardQR returns a PNG image whose payload identifies
	// the card owner, scannable by any phone camera.
	GenerateEmergencyCardQR(userID string) ([]byte, error)
}
