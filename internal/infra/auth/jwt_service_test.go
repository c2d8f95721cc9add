package auth

import (
	"testing"

	"lifeline/config"
	"lifeline/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "lifeline-test"

	return cfg
}

func TestJWTService_IssueAndVerifyPair(t *testing.T) {
	jwtService := NewJWTService(newTestJWTConfig())

	user := &entity.User{ID: "user-1", Email: "alice@example.com"}

	pair, err := jwtService.IssuePair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := jwtService.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserID)
	assert.Equal(t, "alice@example.com", accessClaims.Email)

	refreshClaims, err := jwtService.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	jwtService := NewJWTService(newTestJWTConfig())

	user := &entity.User{ID: "user-1", Email: "alice@example.com"}

	pair, err := jwtService.IssuePair(user)
	require.NoError(t, err)

	// Access and refresh tokens are signed with different secrets.
	_, err = jwtService.VerifyAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = jwtService.VerifyRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := NewJWTService(newTestJWTConfig())

	claims, err := jwtService.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService := NewJWTService(newTestJWTConfig())

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService := NewJWTService(otherCfg)

	user := &entity.User{ID: "user-1", Email: "alice@example.com"}
	pair, err := jwtService.IssuePair(user)
	require.NoError(t, err)

	_, err = otherService.VerifyAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService := NewJWTService(newTestJWTConfig())

	hash := jwtService.HashToken("some-refresh-token")

	// SHA-256 hex digest.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}
