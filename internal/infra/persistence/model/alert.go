package model

import (
	"time"

	"lifeline/internal/domain/entity"
)

// Alert is the GORM model for the sos_alerts table.
type Alert struct {
	ID            string           `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	SenderID      string           `gorm:"type:uuid;index;not null"`
	EmergencyType string           `gorm:"type:text;not null;default:''"`
	Message       string           `gorm:"type:text;not null"`
	Address       string           `gorm:"type:text;not null;default:''"`
	Latitude      *float64         `gorm:"type:double precision"`
	Longitude     *float64         `gorm:"type:double precision"`
	BatteryStatus *int             `gorm:"type:smallint"`
	CircleIDs     []string         `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time        `gorm:"autoCreateTime;index:idx_alerts_created_at,sort:desc"`
	Recipients    []AlertRecipient `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
}

func (Alert) TableName() string {
	return "sos_alerts"
}

// AlertRecipient is the GORM model for the sos_alert_recipients table.
// The (alert_id, contact_id) pair is unique so the fan-out never stores
// duplicate deliveries.
type AlertRecipient struct {
	ID             string     `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	AlertID        string     `gorm:"type:uuid;uniqueIndex:idx_alert_contact;not null"`
	ContactID      string     `gorm:"type:uuid;uniqueIndex:idx_alert_contact;index;not null"`
	Name           string     `gorm:"type:text;not null;default:''"`
	Acknowledged   bool       `gorm:"not null;default:false"`
	AcknowledgedAt *time.Time `gorm:"type:timestamptz"`
}

func (AlertRecipient) TableName() string {
	return "sos_alert_recipients"
}

func (m *Alert) ToDomain() *entity.Alert {
	recipients := make([]entity.AlertRecipient, 0, len(m.Recipients))
	for i := range m.Recipients {
		recipients = append(recipients, *m.Recipients[i].ToDomain())
	}

	return &entity.Alert{
		ID:            m.ID,
		SenderID:      m.SenderID,
		EmergencyType: m.EmergencyType,
		Message:       m.Message,
		Address:       m.Address,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		BatteryStatus: m.BatteryStatus,
		CircleIDs:     m.CircleIDs,
		CreatedAt:     m.CreatedAt,
		Recipients:    recipients,
	}
}

func FromAlertDomain(a *entity.Alert) *Alert {
	recipients := make([]AlertRecipient, 0, len(a.Recipients))
	for i := range a.Recipients {
		recipients = append(recipients, *FromAlertRecipientDomain(&a.Recipients[i]))
	}

	return &Alert{
		ID:            a.ID,
		SenderID:      a.SenderID,
		EmergencyType: a.EmergencyType,
		Message:       a.Message,
		Address:       a.Address,
		Latitude:      a.Latitude,
		Longitude:     a.Longitude,
		BatteryStatus: a.BatteryStatus,
		CircleIDs:     a.CircleIDs,
		CreatedAt:     a.CreatedAt,
		Recipients:    recipients,
	}
}

func (m *AlertRecipient) ToDomain() *entity.AlertRecipient {
	return &entity.AlertRecipient{
		ID:             m.ID,
		AlertID:        m.AlertID,
		ContactID:      m.ContactID,
		Name:           m.Name,
		Acknowledged:   m.Acknowledged,
		AcknowledgedAt: m.AcknowledgedAt,
	}
}

func FromAlertRecipientDomain(r *entity.AlertRecipient) *AlertRecipient {
	return &AlertRecipient{
		ID:             r.ID,
		AlertID:        r.AlertID,
		ContactID:      r.ContactID,
		Name:           r.Name,
		Acknowledged:   r.Acknowledged,
		AcknowledgedAt: r.AcknowledgedAt,
	}
}
