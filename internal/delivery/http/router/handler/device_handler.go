package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device registration handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	Platform string `json:"platform"`
}

// RegisterDevice registers an FCM token for the requester's device.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}

	err := h.uc.RegisterDevice(c.Request().Context(), usecase.RegisterDeviceInput{
		UserID:   middleware.GetUserID(c),
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Device registered")
}

// UnregisterDevice removes a previously registered token.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}

	err := h.uc.UnregisterDevice(c.Request().Context(), usecase.UnregisterDeviceInput{
		UserID:   middleware.GetUserID(c),
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unregistered")
}
