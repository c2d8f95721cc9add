package service

import (
	"context"
	"time"
)

// AlertEvent is published when an SOS alert is raised. The push worker
// consumes it to fan notifications out to recipient devices.
type AlertEvent struct {
	AlertID       string    `json:"alert_id"`
	SenderID      string    `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	CircleIDs     []string  `json:"circle_ids,omitempty"`
	EmergencyType string    `json:"emergency_type,omitempty"`
	Message       string    `json:"message"`
	Address       string    `json:"address,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	BatteryStatus *int      `json:"battery_status,omitempty"`
	RecipientIDs  []string  `json:"recipient_ids"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventPublisher publishes alert events to the configured backend.
type EventPublisher interface {
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error
	Close() error
}
