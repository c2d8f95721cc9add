package impl

import (
	"context"
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, cfg *config.Config) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(
		userRepo,
		refreshTokenRepo,
		hasher,
		tokenService,
		cfg,
		newDiscardLogger(),
	)

	return userServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = "user-1"
			assert.Equal(t, "test@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "  Test@Example.com ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", output.User.ID)
	// Email is normalized before storage.
	assert.Equal(t, "test@example.com", output.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assertErrorCode(t, err, "EMAIL_ALREADY_EXISTS")
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	cfg := newTestConfig()
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireNumbers:   true,
	}
	fx := createTestUserService(t, cfg)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	})

	assertErrorCode(t, err, "WEAK_PASSWORD")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "test@example.com", PasswordHash: "hashed"}
	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "Password123!").Return(nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "user-1", token.UserID)
			assert.Equal(t, "refresh_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "Test@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable.
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "test@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestUserService_Login_TrimsOldSessions(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.MaxActiveSessions = 3
	fx := createTestUserService(t, cfg)
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "test@example.com", PasswordHash: "hashed"}
	pair := &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "Password123!").Return(nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().RevokeOldestForUser(ctx, "user-1", 3).Return(nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "test@example.com"}
	stored := &entity.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	pair := &entity.TokenPair{AccessToken: "new_access", RefreshToken: "new_refresh"}

	fx.tokenService.EXPECT().VerifyRefreshToken("old_refresh").
		Return(&service.TokenClaims{UserID: "user-1", Email: user.Email}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	fx.refreshTokenRepo.EXPECT().Revoke(ctx, "token-1").Return(nil)
	fx.tokenService.EXPECT().IssuePair(user).Return(pair, nil)
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	revokedAt := time.Now().Add(-time.Minute)
	stored := &entity.RefreshToken{
		ID:        "token-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	fx.tokenService.EXPECT().VerifyRefreshToken("refresh").
		Return(&service.TokenClaims{UserID: "user-1"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(stored, nil)

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh"})

	assertErrorCode(t, err, "INVALID_TOKEN")
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	fx.tokenService.EXPECT().VerifyRefreshToken("refresh").
		Return(&service.TokenClaims{UserID: "user-1"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh"})

	assertErrorCode(t, err, "INVALID_TOKEN")
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	stored := &entity.RefreshToken{ID: "token-1", UserID: "user-1"}

	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "hash").Return(stored, nil)
	fx.refreshTokenRepo.EXPECT().Revoke(ctx, "token-1").Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestUserService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestUserService(t, newTestConfig())
	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}
