package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	cardRepo      repository.CardRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

func NewCardService(
	cardRepo repository.CardRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.CardUsecase {
	return &cardService{
		cardRepo:      cardRepo,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveCard creates or replaces the user's single emergency card.
func (srv *cardService) SaveCard(ctx context.Context, input usecase.SaveCardInput) (*entity.EmergencyCard, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domainerrors.NewInvalidInputError("full name is required")
	}

	card := &entity.EmergencyCard{
		UserID:           input.UserID,
		FullName:         fullName,
		DateOfBirth:      strings.TrimSpace(input.DateOfBirth),
		BloodType:        strings.ToUpper(strings.TrimSpace(input.BloodType)),
		Allergies:        input.Allergies,
		MedicalNotes:     strings.TrimSpace(input.MedicalNotes),
		EmergencyContact: strings.TrimSpace(input.EmergencyContact),
		EmergencyPhone:   strings.TrimSpace(input.EmergencyPhone),
	}

	if err := srv.cardRepo.Upsert(ctx, card); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("emergency card saved",
		slog.String("user_id", input.UserID),
	)

	return card, nil
}

func (srv *cardService) GetCard(ctx context.Context, userID string) (*entity.EmergencyCard, error) {
	card, err := srv.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.NewCardNotFoundError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return card, nil
}

func (srv *cardService) DeleteCard(ctx context.Context, userID string) error {
	if err := srv.cardRepo.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return domainerrors.NewCardNotFoundError()
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return nil
}

// GenerateQR renders the QR code for the user's card. The card must exist
// so a scanned code never leads to an empty page.
func (srv *cardService) GenerateQR(ctx context.Context, userID string) ([]byte, error) {
	if _, err := srv.GetCard(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateEmergencyCardQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate emergency card QR")
	}

	return png, nil
}
