package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return user, nil
}

func (srv *profileService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	user.Phone = strings.TrimSpace(input.Phone)

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return user, nil
}

// UpdatePresence stores the client's location and battery snapshot.
func (srv *profileService) UpdatePresence(ctx context.Context, input usecase.UpdatePresenceInput) error {
	if input.BatteryLevel < constants.MinBatteryLevel || input.BatteryLevel > constants.MaxBatteryLevel {
		return domainerrors.NewInvalidInputError("battery level must be between 0 and 100")
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return domainerrors.NewInvalidInputError("coordinates out of range")
	}

	err := srv.userRepo.UpdatePresence(ctx, input.UserID, input.Latitude, input.Longitude, input.BatteryLevel, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewUserNotFoundError()
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Debug("presence updated",
		slog.String("user_id", input.UserID),
		slog.Int("battery_level", input.BatteryLevel),
	)

	return nil
}
