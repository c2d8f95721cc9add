package usecase

import (
	"context"
	"time"
)

// RaiseAlertInput raises an SOS alert targeted at one or more of the
// sender's circles.
type RaiseAlertInput struct {
	SenderID      string
	CircleIDs     []string
	EmergencyType string
	Message       string
	Address       string
	Latitude      *float64
	Longitude     *float64
	BatteryStatus *int
}

// RaiseAlertToAllInput raises an SOS alert to every contact across all of
// the sender's circles.
type RaiseAlertToAllInput struct {
	SenderID      string
	EmergencyType string
	Message       string
	Address       string
	Latitude      *float64
	Longitude     *float64
	BatteryStatus *int
}

// AcknowledgeInput records that a recipient has seen an alert.
type AcknowledgeInput struct {
	AlertID string
	UserID  string
}

// AcknowledgeOutput is the recipient's refreshed state after a successful
// acknowledgment.
type AcknowledgeOutput struct {
	AlertID        string
	ContactID      string
	Acknowledged   bool
	AcknowledgedAt time.Time
}

// RaiseAlertOutput reports the fan-out result.
type RaiseAlertOutput struct {
	AlertID        string
	RecipientCount int
	CreatedAt      time.Time
}

// RecipientStatus is one recipient's acknowledgment state as shown to the
// sender.
type RecipientStatus struct {
	ContactID      string
	Name           string
	Acknowledged   bool
	AcknowledgedAt *time.Time
}

// ReceivedAlertView is an inbox entry enriched with the viewer's state.
// Recent and Acknowledgeable both derive from the same window.
type ReceivedAlertView struct {
	AlertID         string
	SenderID        string
	SenderName      string
	EmergencyType   string
	Message         string
	Address         string
	Latitude        *float64
	Longitude       *float64
	BatteryStatus   *int
	CreatedAt       time.Time
	Recent          bool
	Acknowledgeable bool
	Acknowledged    bool
	AcknowledgedAt  *time.Time
}

// SentAlertView is an outbox entry with per-recipient acknowledgments.
type SentAlertView struct {
	AlertID       string
	EmergencyType string
	Message       string
	Address       string
	Latitude      *float64
	Longitude     *float64
	BatteryStatus *int
	CreatedAt     time.Time
	Recent        bool
	Recipients    []RecipientStatus
}

// AlertUsecase defines the SOS alert lifecycle operations.
type AlertUsecase interface {
	RaiseAlert(ctx context.Context, input RaiseAlertInput) (*RaiseAlertOutput, error)
	RaiseAlertToAll(ctx context.Context, input RaiseAlertToAllInput) (*RaiseAlertOutput, error)
	Acknowledge(ctx context.Context, input AcknowledgeInput) (*AcknowledgeOutput, error)
	ListReceived(ctx context.Context, userID string) ([]ReceivedAlertView, error)
	ListSent(ctx context.Context, userID string) ([]SentAlertView, error)
	DeleteAlert(ctx context.Context, alertID, senderID string) error
}
