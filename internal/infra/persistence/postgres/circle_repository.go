package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type circleRepository struct {
	db *gorm.DB
}

func NewCircleRepository(db *gorm.DB) repository.CircleRepository {
	return &circleRepository{db: db}
}

func (repo *circleRepository) Create(ctx context.Context, circle *entity.Circle) error {
	circleM := model.FromCircleDomain(circle)

	if err := repo.db.WithContext(ctx).Create(circleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCircleCode
		}

		return errors.Wrap(err, "failed to create circle")
	}

	circle.ID = circleM.ID
	circle.CreatedAt = circleM.CreatedAt
	circle.UpdatedAt = circleM.UpdatedAt

	return nil
}

func (repo *circleRepository) FindByID(ctx context.Context, id string) (*entity.Circle, error) {
	var circleM model.Circle
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&circleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCircleNotFound
		}

		return nil, errors.Wrap(err, "failed to find circle by id")
	}

	return circleM.ToDomain(), nil
}

func (repo *circleRepository) FindByCode(ctx context.Context, code string) (*entity.Circle, error) {
	var circleM model.Circle
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&circleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCircleNotFound
		}

		return nil, errors.Wrap(err, "failed to find circle by code")
	}

	return circleM.ToDomain(), nil
}

func (repo *circleRepository) Delete(ctx context.Context, id string) error {
	// Membership rows go first so no orphans remain.
	if err := repo.db.WithContext(ctx).
		Where("circle_id = ?", id).
		Delete(&model.CircleMember{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete circle members")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Circle{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete circle")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCircleNotFound
	}

	return nil
}

func (repo *circleRepository) AddMember(ctx context.Context, member *entity.CircleMember) error {
	memberM := model.FromCircleMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMember
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCircleNotFound
		}

		return errors.Wrap(err, "failed to add circle member")
	}

	member.ID = memberM.ID
	member.JoinedAt = memberM.JoinedAt

	return nil
}

func (repo *circleRepository) RemoveMember(ctx context.Context, circleID, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("circle_id = ? AND user_id = ?", circleID, userID).
		Delete(&model.CircleMember{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove circle member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *circleRepository) FindMember(ctx context.Context, circleID, userID string) (*entity.CircleMember, error) {
	var memberM model.CircleMember
	err := repo.db.WithContext(ctx).
		Where("circle_id = ? AND user_id = ?", circleID, userID).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find circle member")
	}

	return memberM.ToDomain(), nil
}

func (repo *circleRepository) CountMembers(ctx context.Context, circleID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CircleMember{}).
		Where("circle_id = ?", circleID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count circle members")
	}

	return count, nil
}

func (repo *circleRepository) ListMembers(ctx context.Context, circleID string) ([]entity.MemberPresence, error) {
	var members []entity.MemberPresence
	err := repo.db.WithContext(ctx).
		Model(&model.CircleMember{}).
		Select("circle_members.user_id, users.name, users.email, circle_members.role, users.latitude, users.longitude, users.battery_level, users.presence_at").
		Joins("JOIN users ON users.id = circle_members.user_id").
		Where("circle_members.circle_id = ?", circleID).
		Order("circle_members.joined_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list circle members")
	}

	return members, nil
}

func (repo *circleRepository) ListCreatedBy(ctx context.Context, userID string) ([]entity.Circle, error) {
	var circleMs []model.Circle
	err := repo.db.WithContext(ctx).
		Where("admin_id = ?", userID).
		Order("created_at DESC").
		Find(&circleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list created circles")
	}

	circles := make([]entity.Circle, 0, len(circleMs))
	for i := range circleMs {
		circles = append(circles, *circleMs[i].ToDomain())
	}

	return circles, nil
}

func (repo *circleRepository) ListJoinedBy(ctx context.Context, userID string) ([]entity.Circle, error) {
	var circleMs []model.Circle
	err := repo.db.WithContext(ctx).
		Joins("JOIN circle_members ON circle_members.circle_id = circles.id").
		Where("circle_members.user_id = ? AND circles.admin_id <> ?", userID, userID).
		Order("circle_members.joined_at DESC").
		Find(&circleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list joined circles")
	}

	circles := make([]entity.Circle, 0, len(circleMs))
	for i := range circleMs {
		circles = append(circles, *circleMs[i].ToDomain())
	}

	return circles, nil
}

func (repo *circleRepository) ListMemberIDs(ctx context.Context, circleID string) ([]string, error) {
	var ids []string
	err := repo.db.WithContext(ctx).
		Model(&model.CircleMember{}).
		Where("circle_id = ?", circleID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list circle member ids")
	}

	return ids, nil
}

func (repo *circleRepository) ListContactIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := repo.db.WithContext(ctx).
		Model(&model.CircleMember{}).
		Distinct("user_id").
		Where("user_id <> ?", userID).
		Where("circle_id IN (?)", repo.db.
			Model(&model.CircleMember{}).
			Select("circle_id").
			Where("user_id = ?", userID)).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact ids")
	}

	return ids, nil
}
