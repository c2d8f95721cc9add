package repository

import (
	"context"

	"lifeline/internal/domain/entity"
)

// CardRepository persists emergency cards, one per user.
type CardRepository interface {
	Upsert(ctx context.Context, card *entity.EmergencyCard) error
	FindByUserID(ctx context.Context, userID string) (*entity.EmergencyCard, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
