package entity

import "time"

// EmergencyCard holds a user's medical and contact details for first
// responders. Each user has at most one card; it is readable without
// authentication through the QR code printed on it.
type EmergencyCard struct {
	ID               string
	UserID           string
	FullName         string
	DateOfBirth      string
	BloodType        string
	Allergies        []string
	MedicalNotes     string
	EmergencyContact string
	EmergencyPhone   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
