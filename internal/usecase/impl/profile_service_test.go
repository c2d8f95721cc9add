package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	got, err := service.GetProfile(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.GetProfile(ctx, "ghost")

	assertErrorCode(t, err, "USER_NOT_FOUND")
}

func TestProfileService_UpdateProfile_KeepsNameWhenBlank(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Name: "Alice", Phone: "123"}
	userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)
	userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "Alice", updated.Name)
			assert.Equal(t, "0912345678", updated.Phone)
		}).
		Return(nil)

	got, err := service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: "user-1",
		Name:   "  ",
		Phone:  " 0912345678 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestProfileService_UpdatePresence_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().
		UpdatePresence(ctx, "user-1", 25.03, 121.56, 80, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := service.UpdatePresence(ctx, usecase.UpdatePresenceInput{
		UserID:       "user-1",
		Latitude:     25.03,
		Longitude:    121.56,
		BatteryLevel: 80,
	})

	require.NoError(t, err)
}

func TestProfileService_UpdatePresence_BatteryOutOfRange(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	err := service.UpdatePresence(ctx, usecase.UpdatePresenceInput{
		UserID:       "user-1",
		Latitude:     25.03,
		Longitude:    121.56,
		BatteryLevel: 101,
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestProfileService_UpdatePresence_CoordinatesOutOfRange(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	err := service.UpdatePresence(ctx, usecase.UpdatePresenceInput{
		UserID:       "user-1",
		Latitude:     95.0,
		Longitude:    121.56,
		BatteryLevel: 50,
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}
