package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/qrcode"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardHandler_GetPublicCard_Integration(t *testing.T) {
	cardRepo := mockRepo.NewMockCardRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Real card service and QR code service, mocked persistence only.
	cardService := impl.NewCardService(cardRepo, qrcode.NewQRCodeService(256, "M"), logger)
	handler := NewCardHandler(cardService, logger)

	card := &entity.EmergencyCard{
		ID:        "card-1",
		UserID:    "user-1",
		FullName:  "Alice Chen",
		BloodType: "O+",
		Allergies: []string{"penicillin"},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cards/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	cardRepo.EXPECT().FindByUserID(req.Context(), "user-1").Return(card, nil)

	err := handler.GetPublicCard(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"fullName":"Alice Chen"`)
	assert.Contains(t, responseBody, `"bloodType":"O+"`)
	assert.Contains(t, responseBody, "penicillin")
	// The password-free public view never includes account fields.
	assert.NotContains(t, responseBody, "passwordHash")
}

func TestCardHandler_GetQRCode_Integration(t *testing.T) {
	cardRepo := mockRepo.NewMockCardRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cardService := impl.NewCardService(cardRepo, qrcode.NewQRCodeService(256, "M"), logger)
	handler := NewCardHandler(cardService, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/qr-codes/card", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")

	cardRepo.EXPECT().FindByUserID(req.Context(), "user-1").
		Return(&entity.EmergencyCard{ID: "card-1", UserID: "user-1", FullName: "Alice Chen"}, nil)

	err := handler.GetQRCode(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.Bytes()
	require.NotEmpty(t, body)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, body[:4])
}

func TestCardHandler_GetPublicCard_NotFoundPropagates(t *testing.T) {
	cardRepo := mockRepo.NewMockCardRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cardService := impl.NewCardService(cardRepo, qrcode.NewQRCodeService(256, "M"), logger)
	handler := NewCardHandler(cardService, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cards/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("ghost")

	cardRepo.EXPECT().FindByUserID(req.Context(), "ghost").
		Return(nil, repository.ErrCardNotFound)

	// The handler returns the error for the error middleware to map.
	err := handler.GetPublicCard(c)
	assert.Error(t, err)
}
