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

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger())
	ctx := context.Background()

	deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			assert.Equal(t, "user-1", device.UserID)
			assert.Equal(t, "fcm-token-1", device.FCMToken)
			assert.Equal(t, "ios", device.Platform)
		}).
		Return(nil)

	err := service.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   "user-1",
		FCMToken: " fcm-token-1 ",
		Platform: "iOS",
	})

	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger())
	ctx := context.Background()

	err := service.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   "user-1",
		FCMToken: "   ",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestDeviceService_UnregisterDevice_UnknownTokenIsIdempotent(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger())
	ctx := context.Background()

	deviceRepo.EXPECT().Delete(ctx, "user-1", "gone").Return(repository.ErrDeviceNotFound)

	err := service.UnregisterDevice(ctx, usecase.UnregisterDeviceInput{
		UserID:   "user-1",
		FCMToken: "gone",
	})

	require.NoError(t, err)
}
