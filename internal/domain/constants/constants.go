// Package constants holds domain-wide constant values.
package constants

import "time"

const (
	// AccessTokenTTL is the lifetime of an access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a refresh token.
	RefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultAckWindow governs both alert acknowledgeability and the
	// recency urgency cue. The two concepts share one threshold on purpose.
	DefaultAckWindow = 24 * time.Hour

	// CircleCodeLength is the default length of circle invite codes.
	CircleCodeLength = 6

	// CircleCodeAlphabet is the character set for circle invite codes.
	// Ambiguous characters (0/O, 1/I/L) are excluded.
	CircleCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// MaxFCMBatchSize is the maximum number of tokens per FCM multicast call.
	MaxFCMBatchSize = 500

	// MinBatteryLevel and MaxBatteryLevel bound reported battery percentages.
	MinBatteryLevel = 0
	MaxBatteryLevel = 100
)

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Circle member roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
