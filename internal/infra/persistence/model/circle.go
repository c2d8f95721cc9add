package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// Circle is the GORM model for the circles table.
type Circle struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	AdminID   string    `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Circle) TableName() string {
	return "circles"
}

// CircleMember is the GORM model for the circle_members table.
type CircleMember struct {
	ID       string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	CircleID string    `gorm:"type:uuid;uniqueIndex:idx_circle_user;not null"`
	UserID   string    `gorm:"type:uuid;uniqueIndex:idx_circle_user;index;not null"`
	Role     string    `gorm:"type:varchar(16);not null;default:'member'"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

func (CircleMember) TableName() string {
	return "circle_members"
}

func (m *Circle) ToDomain() *entity.Circle {
	return &entity.Circle{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		AdminID:   m.AdminID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromCircleDomain(c *entity.Circle) *Circle {
	return &Circle{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		AdminID:   c.AdminID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CircleMember) ToDomain() *entity.CircleMember {
	return &entity.CircleMember{
		ID:       m.ID,
		CircleID: m.CircleID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

func FromCircleMemberDomain(m *entity.CircleMember) *CircleMember {
	return &CircleMember{
		ID:       m.ID,
		CircleID: m.CircleID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}
