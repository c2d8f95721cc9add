package entity

import "time"

// Alert is an SOS alert raised by a sender and fanned out to the members
// of the targeted circles, or of every circle the sender belongs to when
// no circles are named.
type Alert struct {
	ID            string
	SenderID      string
	EmergencyType string
	Message       string
	Address       string
	Latitude      *float64
	Longitude     *float64
	BatteryStatus *int
	CircleIDs     []string // empty means broadcast
	CreatedAt     time.Time
	Recipients    []AlertRecipient
}

// AlertRecipient is one delivery target of an alert, frozen at send time.
// Membership changes after the alert is created never affect this set.
type AlertRecipient struct {
	ID             string
	AlertID        string
	ContactID      string
	Name           string // display name captured at send time
	Acknowledged   bool
	AcknowledgedAt *time.Time
}

// IsWithinWindow reports whether the alert's age is at most the window,
// boundary included. This single predicate decides both whether an alert
// can still be acknowledged and whether it is flagged as recent; the two
// concepts share one threshold so an alert stops being urgent at the
// exact moment it stops being actionable.
func (a *Alert) IsWithinWindow(now time.Time, window time.Duration) bool {
	return !a.CreatedAt.Before(now.Add(-window))
}

// RecipientFor returns the recipient entry for contactID, or nil when the
// user is not part of the frozen recipient set.
func (a *Alert) RecipientFor(contactID string) *AlertRecipient {
	for i := range a.Recipients {
		if a.Recipients[i].ContactID == contactID {
			return &a.Recipients[i]
		}
	}

	return nil
}
