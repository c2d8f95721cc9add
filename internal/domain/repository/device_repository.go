package repository

import (
	"context"

	"lifeline/internal/domain/entity"
)

// DeviceRepository persists push notification registrations.
type DeviceRepository interface {
	// Upsert registers the token for the user, updating the existing row
	// when the token is already known.
	Upsert(ctx context.Context, device *entity.Device) error
	Delete(ctx context.Context, userID, fcmToken string) error
	ListByUserIDs(ctx context.Context, userIDs []string) ([]entity.Device, error)
	// DeleteByTokens removes registrations whose tokens FCM reported as
	// invalid.
	DeleteByTokens(ctx context.Context, fcmTokens []string) (int64, error)
}
