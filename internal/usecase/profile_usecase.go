package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// UpdateProfileInput carries editable profile fields.
type UpdateProfileInput struct {
	UserID string
	Name   string
	Phone  string
}

// UpdatePresenceInput carries a presence snapshot from the client.
type UpdatePresenceInput struct {
	UserID       string
	Latitude     float64
	Longitude    float64
	BatteryLevel int
}

// ProfileUsecase manages the user's own profile and presence.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	UpdatePresence(ctx context.Context, input UpdatePresenceInput) error
}
