package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// User is the GORM model for the users table.
type User struct {
	ID           string     `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(32)"`
	Latitude     *float64   `gorm:"type:double precision"`
	Longitude    *float64   `gorm:"type:double precision"`
	BatteryLevel *int       `gorm:"type:smallint"`
	PresenceAt   *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		BatteryLevel: m.BatteryLevel,
		PresenceAt:   m.PresenceAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromUserDomain(u *entity.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
		BatteryLevel: u.BatteryLevel,
		PresenceAt:   u.PresenceAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
