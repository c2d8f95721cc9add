package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert registers the token. A token re-registered by another user moves
// to that user, covering handset handovers and reinstalls.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := model.FromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	device.ID = deviceM.ID

	return nil
}

func (repo *deviceRepository) Delete(ctx context.Context, userID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND fcm_token = ?", userID, fcmToken).
		Delete(&model.Device{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]entity.Device, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceMs []model.Device
	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&deviceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices by user ids")
	}

	devices := make([]entity.Device, 0, len(deviceMs))
	for i := range deviceMs {
		devices = append(devices, *deviceMs[i].ToDomain())
	}

	return devices, nil
}

func (repo *deviceRepository) DeleteByTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", fcmTokens).
		Delete(&model.Device{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete devices by tokens")
	}

	return result.RowsAffected, nil
}
