package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// Device is the GORM model for the devices table.
type Device struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	FCMToken  string    `gorm:"type:text;uniqueIndex:idx_devices_token,length:255;not null"`
	Platform  string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Device) TableName() string {
	return "devices"
}

func (m *Device) ToDomain() *entity.Device {
	return &entity.Device{
		ID:        m.ID,
		UserID:    m.UserID,
		FCMToken:  m.FCMToken,
		Platform:  m.Platform,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromDeviceDomain(d *entity.Device) *Device {
	return &Device{
		ID:        d.ID,
		UserID:    d.UserID,
		FCMToken:  d.FCMToken,
		Platform:  d.Platform,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
