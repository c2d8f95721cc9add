package entity

import "time"

// User represents an account holder. Presence fields (location and battery)
// are updated by the mobile client and surfaced to circle members.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string

	// Presence snapshot reported by the client.
	Latitude     *float64
	Longitude    *float64
	BatteryLevel *int
	PresenceAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPresence reports whether the user has ever reported a location.
func (u *User) HasPresence() bool {
	return u.Latitude != nil && u.Longitude != nil
}
