package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// RefreshToken is the GORM model for the refresh_tokens table.
type RefreshToken struct {
	ID        string     `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID    string     `gorm:"type:uuid;index;not null"`
	TokenHash string     `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time  `gorm:"type:timestamptz;not null"`
	RevokedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (m *RefreshToken) ToDomain() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

func FromRefreshTokenDomain(t *entity.RefreshToken) *RefreshToken {
	return &RefreshToken{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		RevokedAt: t.RevokedAt,
		CreatedAt: t.CreatedAt,
	}
}
