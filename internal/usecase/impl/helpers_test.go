package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"lifeline/config"
	domainerrors "lifeline/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: 0,
		},
		SOS: &config.SOSConfig{
			AckWindow: 24 * time.Hour,
		},
		Circle: &config.CircleConfig{
			InviteCodeLength: 6,
			MaxMembers:       0,
		},
	}

	return cfg
}

// assertErrorCode asserts that err is an AppError carrying the given code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
