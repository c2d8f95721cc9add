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

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// Upsert writes the user's single card, replacing any previous version.
func (repo *cardRepository) Upsert(ctx context.Context, card *entity.EmergencyCard) error {
	cardM, err := model.FromEmergencyCardDomain(card)
	if err != nil {
		return errors.Wrap(err, "failed to encode emergency card")
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "date_of_birth", "blood_type", "allergies",
				"medical_notes", "emergency_contact", "emergency_phone", "updated_at",
			}),
		}).
		Create(cardM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert emergency card")
	}

	card.ID = cardM.ID

	return nil
}

func (repo *cardRepository) FindByUserID(ctx context.Context, userID string) (*entity.EmergencyCard, error) {
	var cardM model.EmergencyCard
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find emergency card")
	}

	return cardM.ToDomain(), nil
}

func (repo *cardRepository) DeleteByUserID(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.EmergencyCard{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete emergency card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}
