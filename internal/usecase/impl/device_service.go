package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *deviceService) RegisterDevice(ctx context.Context, input usecase.RegisterDeviceInput) error {
	token := strings.TrimSpace(input.FCMToken)
	if token == "" {
		return domainerrors.NewInvalidInputError("fcm token is required")
	}

	device := &entity.Device{
		UserID:   input.UserID,
		FCMToken: token,
		Platform: strings.ToLower(strings.TrimSpace(input.Platform)),
	}

	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("device registered",
		slog.String("user_id", input.UserID),
		slog.String("platform", device.Platform),
	)

	return nil
}

func (srv *deviceService) UnregisterDevice(ctx context.Context, input usecase.UnregisterDeviceInput) error {
	err := srv.deviceRepo.Delete(ctx, input.UserID, strings.TrimSpace(input.FCMToken))
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// Unregistering an unknown token is idempotent.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return nil
}
