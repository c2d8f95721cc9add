package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CardHandler holds dependencies for emergency card handlers.
type CardHandler struct {
	uc     usecase.CardUsecase
	logger *slog.Logger
}

func NewCardHandler(uc usecase.CardUsecase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		uc:     uc,
		logger: logger,
	}
}

type saveCardRequest struct {
	FullName         string   `json:"fullName" validate:"required"`
	DateOfBirth      string   `json:"dateOfBirth"`
	BloodType        string   `json:"bloodType"`
	Allergies        []string `json:"allergies"`
	MedicalNotes     string   `json:"medicalNotes"`
	EmergencyContact string   `json:"emergencyContact"`
	EmergencyPhone   string   `json:"emergencyPhone"`
}

type cardView struct {
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	BloodType        string    `json:"bloodType,omitempty"`
	Allergies        []string  `json:"allergies"`
	MedicalNotes     string    `json:"medicalNotes,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toCardView(card *entity.EmergencyCard) cardView {
	allergies := card.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	return cardView{
		UserID:           card.UserID,
		FullName:         card.FullName,
		DateOfBirth:      card.DateOfBirth,
		BloodType:        card.BloodType,
		Allergies:        allergies,
		MedicalNotes:     card.MedicalNotes,
		EmergencyContact: card.EmergencyContact,
		EmergencyPhone:   card.EmergencyPhone,
		UpdatedAt:        card.UpdatedAt,
	}
}

// SaveCard creates or replaces the requester's emergency card.
func (h *CardHandler) SaveCard(c echo.Context) error {
	var req saveCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid card input")
	}

	card, err := h.uc.SaveCard(c.Request().Context(), usecase.SaveCardInput{
		UserID:           middleware.GetUserID(c),
		FullName:         req.FullName,
		DateOfBirth:      req.DateOfBirth,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		MedicalNotes:     req.MedicalNotes,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCardView(card), "Card saved")
}

// GetOwnCard returns the requester's card.
func (h *CardHandler) GetOwnCard(c echo.Context) error {
	card, err := h.uc.GetCard(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCardView(card), "")
}

// GetPublicCard returns another user's card. This route is deliberately
// unauthenticated: a first responder scanning the QR code has no account.
func (h *CardHandler) GetPublicCard(c echo.Context) error {
	card, err := h.uc.GetCard(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCardView(card), "")
}

// DeleteCard removes the requester's card.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	if err := h.uc.DeleteCard(c.Request().Context(), middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Card deleted")
}

// GetQRCode renders the PNG QR code pointing at the requester's card.
func (h *CardHandler) GetQRCode(c echo.Context) error {
	png, err := h.uc.GenerateQR(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
