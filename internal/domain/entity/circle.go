package entity

import "time"

// Circle is a named group of users who receive each other's SOS alerts.
type Circle struct {
	ID        string
	Name      string
	Code      string
	AdminID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CircleMember links a user to a circle with a role.
type CircleMember struct {
	ID       string
	CircleID string
	UserID   string
	Role     string
	JoinedAt time.Time
}

// IsAdmin reports whether the member holds the admin role.
func (m *CircleMember) IsAdmin() bool {
	return m.Role == "admin"
}

// MemberPresence is a circle member joined with their presence snapshot,
// as shown on the circle map screen.
type MemberPresence struct {
	UserID       string
	Name         string
	Email        string
	Role         string
	Latitude     *float64
	Longitude    *float64
	BatteryLevel *int
	PresenceAt   *time.Time
}
