package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlert_IsWithinWindow(t *testing.T) {
	now := time.Now()
	window := 24 * time.Hour

	tests := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"just created", now, true},
		{"one hour old", now.Add(-1 * time.Hour), true},
		{"one second before cutoff", now.Add(-window + time.Second), true},
		{"exactly at cutoff", now.Add(-window), true},
		{"one second past cutoff", now.Add(-window - time.Second), false},
		{"two days old", now.Add(-48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := &Alert{CreatedAt: tt.createdAt}
			assert.Equal(t, tt.want, alert.IsWithinWindow(now, window))
		})
	}
}

func TestAlert_RecipientFor(t *testing.T) {
	alert := &Alert{
		Recipients: []AlertRecipient{
			{ContactID: "user-2"},
			{ContactID: "user-3", Acknowledged: true},
		},
	}

	found := alert.RecipientFor("user-3")
	assert.NotNil(t, found)
	assert.True(t, found.Acknowledged)

	assert.Nil(t, alert.RecipientFor("stranger"))

	// The returned pointer aliases the slice entry, so callers can see
	// state changes without re-reading the alert.
	found = alert.RecipientFor("user-2")
	found.Acknowledged = true
	assert.True(t, alert.Recipients[0].Acknowledged)
}

func TestRefreshToken_IsActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{"active", RefreshToken{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", RefreshToken{ExpiresAt: now.Add(-time.Hour)}, false},
		{"revoked", RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.IsActive(now))
		})
	}
}
