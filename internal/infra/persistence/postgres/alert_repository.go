package postgres

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// Create stores the alert and its recipient rows atomically. GORM inserts
// the association rows together with the parent inside one transaction.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertM := model.FromAlertDomain(alert)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(alertM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt
	for i := range alertM.Recipients {
		alert.Recipients[i].ID = alertM.Recipients[i].ID
		alert.Recipients[i].AlertID = alertM.ID
	}

	return nil
}

func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	var alertM model.Alert
	err := repo.db.WithContext(ctx).
		Preload("Recipients").
		Where("id = ?", id).
		First(&alertM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by id")
	}

	return alertM.ToDomain(), nil
}

// ListForRecipient returns the user's inbox in stable newest-first order.
// Alerts the user raised themselves are filtered here rather than at write
// time, so historical rows need no migration if the rule ever changes.
func (repo *alertRepository) ListForRecipient(ctx context.Context, userID string) ([]entity.Alert, error) {
	var alertMs []model.Alert
	err := repo.db.WithContext(ctx).
		Preload("Recipients").
		Joins("JOIN sos_alert_recipients ON sos_alert_recipients.alert_id = sos_alerts.id").
		Where("sos_alert_recipients.contact_id = ?", userID).
		Where("sos_alerts.sender_id <> ?", userID).
		Order("sos_alerts.created_at DESC, sos_alerts.id DESC").
		Find(&alertMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts for recipient")
	}

	alerts := make([]entity.Alert, 0, len(alertMs))
	for i := range alertMs {
		alerts = append(alerts, *alertMs[i].ToDomain())
	}

	return alerts, nil
}

func (repo *alertRepository) ListBySender(ctx context.Context, senderID string) ([]entity.Alert, error) {
	var alertMs []model.Alert
	err := repo.db.WithContext(ctx).
		Preload("Recipients").
		Where("sender_id = ?", senderID).
		Order("created_at DESC, id DESC").
		Find(&alertMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts by sender")
	}

	alerts := make([]entity.Alert, 0, len(alertMs))
	for i := range alertMs {
		alerts = append(alerts, *alertMs[i].ToDomain())
	}

	return alerts, nil
}

// DeleteBySender removes the alert only when senderID owns it. The
// ownership check lives in the WHERE clause, so a non-owner delete and a
// missing alert produce the same result.
func (repo *alertRepository) DeleteBySender(ctx context.Context, alertID, senderID string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND sender_id = ?", alertID, senderID).
			Delete(&model.Alert{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete alert")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAlertNotFound
		}

		if err := tx.
			Where("alert_id = ?", alertID).
			Delete(&model.AlertRecipient{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete alert recipients")
		}

		return nil
	})
}

// Acknowledge performs the single conditional update that makes the
// false-to-true transition linearizable. Concurrent calls race on the
// `acknowledged = false` predicate and exactly one wins.
func (repo *alertRepository) Acknowledge(ctx context.Context, alertID, contactID string, ackedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertRecipient{}).
		Where("alert_id = ? AND contact_id = ? AND acknowledged = false", alertID, contactID).
		Updates(map[string]any{
			"acknowledged":    true,
			"acknowledged_at": ackedAt,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to acknowledge alert")
	}

	return result.RowsAffected, nil
}
