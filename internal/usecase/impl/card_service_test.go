package impl

import (
	"context"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cardServiceFixtures struct {
	service       usecase.CardUsecase
	cardRepo      *mockRepo.MockCardRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestCardService(t *testing.T) cardServiceFixtures {
	cardRepo := mockRepo.NewMockCardRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewCardService(cardRepo, qrcodeService, newDiscardLogger())

	return cardServiceFixtures{
		service:       service,
		cardRepo:      cardRepo,
		qrcodeService: qrcodeService,
	}
}

func TestCardService_SaveCard_Success(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.EmergencyCard")).
		Run(func(ctx context.Context, card *entity.EmergencyCard) {
			assert.Equal(t, "Alice Chen", card.FullName)
			assert.Equal(t, "O+", card.BloodType)
		}).
		Return(nil)

	card, err := fx.service.SaveCard(ctx, usecase.SaveCardInput{
		UserID:    "user-1",
		FullName:  " Alice Chen ",
		BloodType: " o+ ",
		Allergies: []string{"penicillin"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"penicillin"}, card.Allergies)
}

func TestCardService_SaveCard_MissingName(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	_, err := fx.service.SaveCard(ctx, usecase.SaveCardInput{
		UserID:   "user-1",
		FullName: "  ",
	})

	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestCardService_GetCard_NotFound(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.GetCard(ctx, "user-1")

	assertErrorCode(t, err, "CARD_NOT_FOUND")
}

func TestCardService_GenerateQR_RequiresCard(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.GenerateQR(ctx, "user-1")

	// No card, no QR code: a scanned code must never lead to an empty page.
	assertErrorCode(t, err, "CARD_NOT_FOUND")
}

func TestCardService_GenerateQR_Success(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	card := &entity.EmergencyCard{ID: "card-1", UserID: "user-1", FullName: "Alice Chen"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.cardRepo.EXPECT().FindByUserID(ctx, "user-1").Return(card, nil)
	fx.qrcodeService.EXPECT().GenerateEmergencyCardQR("user-1").Return(png, nil)

	got, err := fx.service.GenerateQR(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCardService_DeleteCard_NotFound(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	fx.cardRepo.EXPECT().DeleteByUserID(ctx, "user-1").Return(repository.ErrCardNotFound)

	err := fx.service.DeleteCard(ctx, "user-1")

	assertErrorCode(t, err, "CARD_NOT_FOUND")
}
