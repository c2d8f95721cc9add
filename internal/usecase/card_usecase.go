package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// SaveCardInput creates or replaces the user's emergency card.
type SaveCardInput struct {
	UserID           string
	FullName         string
	DateOfBirth      string
	BloodType        string
	Allergies        []string
	MedicalNotes     string
	EmergencyContact string
	EmergencyPhone   string
}

// CardUsecase manages emergency cards and their QR codes.
type CardUsecase interface {
	SaveCard(ctx context.Context, input SaveCardInput) (*entity.EmergencyCard, error)
	// GetCard returns the card for the given user. Intended for both the
	// owner and unauthenticated first responders who scanned the QR code.
	GetCard(ctx context.Context, userID string) (*entity.EmergencyCard, error)
	DeleteCard(ctx context.Context, userID string) error
	// GenerateQR renders the PNG QR code pointing at the user's card.
	GenerateQR(ctx context.Context, userID string) ([]byte, error)
}
