package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
)

// UserRepository persists user accounts and presence snapshots.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePresence(ctx context.Context, userID string, lat, lng float64, batteryLevel int, at time.Time) error
}
