package model

import (
	"encoding/json"
	"time"

	"lifeline/internal/domain/entity"
)

// EmergencyCard is the GORM model for the emergency_cards table.
// Allergies are stored as a JSON array in a jsonb column.
type EmergencyCard struct {
	ID               string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID           string    `gorm:"type:uuid;uniqueIndex;not null"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	DateOfBirth      string    `gorm:"type:varchar(32)"`
	BloodType        string    `gorm:"type:varchar(8)"`
	Allergies        []byte    `gorm:"type:jsonb"`
	MedicalNotes     string    `gorm:"type:text"`
	EmergencyContact string    `gorm:"type:varchar(255)"`
	EmergencyPhone   string    `gorm:"type:varchar(32)"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (EmergencyCard) TableName() string {
	return "emergency_cards"
}

func (m *EmergencyCard) ToDomain() *entity.EmergencyCard {
	var allergies []string
	if len(m.Allergies) > 0 {
		// Malformed stored JSON degrades to an empty list rather than failing a read.
		_ = json.Unmarshal(m.Allergies, &allergies)
	}

	return &entity.EmergencyCard{
		ID:               m.ID,
		UserID:           m.UserID,
		FullName:         m.FullName,
		DateOfBirth:      m.DateOfBirth,
		BloodType:        m.BloodType,
		Allergies:        allergies,
		MedicalNotes:     m.MedicalNotes,
		EmergencyContact: m.EmergencyContact,
		EmergencyPhone:   m.EmergencyPhone,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromEmergencyCardDomain(c *entity.EmergencyCard) (*EmergencyCard, error) {
	allergies := c.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	encoded, err := json.Marshal(allergies)
	if err != nil {
		return nil, err
	}

	return &EmergencyCard{
		ID:               c.ID,
		UserID:           c.UserID,
		FullName:         c.FullName,
		DateOfBirth:      c.DateOfBirth,
		BloodType:        c.BloodType,
		Allergies:        encoded,
		MedicalNotes:     c.MedicalNotes,
		EmergencyContact: c.EmergencyContact,
		EmergencyPhone:   c.EmergencyPhone,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}, nil
}
