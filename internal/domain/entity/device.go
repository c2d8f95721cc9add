package entity

import "time"

// Device is a push notification registration for one of a user's devices.
type Device struct {
	ID        string
	UserID    string
	FCMToken  string
	Platform  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
