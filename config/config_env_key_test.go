package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sos": map[string]any{
			"ackWindow": "24h",
		},
		"circle": map[string]any{
			"inviteCodeLength": 6,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SOS_ACKWINDOW", want: "sos.ackWindow"},
		{envKey: "CIRCLE_INVITECODELENGTH", want: "circle.inviteCodeLength"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_AckWindowDefault(t *testing.T) {
	var cfg *Config
	if got := cfg.AckWindow(); got != defaultAckWindow {
		t.Fatalf("nil config AckWindow() = %v, want %v", got, defaultAckWindow)
	}

	cfg = &Config{}
	if got := cfg.AckWindow(); got != defaultAckWindow {
		t.Fatalf("empty config AckWindow() = %v, want %v", got, defaultAckWindow)
	}
}
