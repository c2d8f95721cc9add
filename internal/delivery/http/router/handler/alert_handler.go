package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for SOS alert handlers.
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: logger,
	}
}

type raiseAlertRequest struct {
	CircleIDs     []string `json:"circles" validate:"required,min=1,dive,required"`
	EmergencyType string   `json:"emergencyType"`
	Message       string   `json:"message" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	BatteryStatus *int     `json:"batteryStatus" validate:"omitempty,min=0,max=100"`
}

type raiseAlertToAllRequest struct {
	EmergencyType string   `json:"emergencyType"`
	Message       string   `json:"message" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	BatteryStatus *int     `json:"batteryStatus" validate:"omitempty,min=0,max=100"`
}

type acknowledgeRequest struct {
	AlertID string `json:"sosId" validate:"required"`
}

type raiseAlertView struct {
	AlertID        string    `json:"sosId"`
	RecipientCount int       `json:"recipientCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type acknowledgeView struct {
	AlertID        string    `json:"sosId"`
	ContactID      string    `json:"contactId"`
	Acknowledged   bool      `json:"acknowledged"`
	AcknowledgedAt time.Time `json:"acknowledgedAt"`
}

type recipientStatusView struct {
	ContactID      string     `json:"contactId"`
	Name           string     `json:"name"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}

type receivedAlertView struct {
	AlertID        string     `json:"sosId"`
	SenderID       string     `json:"senderId"`
	SenderName     string     `json:"senderName"`
	EmergencyType  string     `json:"emergencyType,omitempty"`
	Message        string     `json:"message"`
	Address        string     `json:"address,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	BatteryStatus  *int       `json:"batteryStatus,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	IsRecent       bool       `json:"isRecent"`
	CanAcknowledge bool       `json:"canAcknowledge"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}

type sentAlertView struct {
	AlertID       string                `json:"sosId"`
	EmergencyType string                `json:"emergencyType,omitempty"`
	Message       string                `json:"message"`
	Address       string                `json:"address,omitempty"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	BatteryStatus *int                  `json:"batteryStatus,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	IsRecent      bool                  `json:"isRecent"`
	Recipients    []recipientStatusView `json:"recipients"`
}

// RaiseAlert raises an SOS alert targeted at one or more circles.
func (h *AlertHandler) RaiseAlert(c echo.Context) error {
	var req raiseAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}

	output, err := h.uc.RaiseAlert(c.Request().Context(), usecase.RaiseAlertInput{
		SenderID:      middleware.GetUserID(c),
		CircleIDs:     req.CircleIDs,
		EmergencyType: req.EmergencyType,
		Message:       req.Message,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BatteryStatus: req.BatteryStatus,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, raiseAlertView{
		AlertID:        output.AlertID,
		RecipientCount: output.RecipientCount,
		CreatedAt:      output.CreatedAt,
	}, "Alert raised")
}

// RaiseAlertToAll raises an SOS alert to every contact across all circles.
func (h *AlertHandler) RaiseAlertToAll(c echo.Context) error {
	var req raiseAlertToAllRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid alert input")
	}

	output, err := h.uc.RaiseAlertToAll(c.Request().Context(), usecase.RaiseAlertToAllInput{
		SenderID:      middleware.GetUserID(c),
		EmergencyType: req.EmergencyType,
		Message:       req.Message,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BatteryStatus: req.BatteryStatus,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, raiseAlertView{
		AlertID:        output.AlertID,
		RecipientCount: output.RecipientCount,
		CreatedAt:      output.CreatedAt,
	}, "Alert raised")
}

// Acknowledge records that the requester has seen an alert.
func (h *AlertHandler) Acknowledge(c echo.Context) error {
	var req acknowledgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid acknowledge input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid acknowledge input")
	}

	output, err := h.uc.Acknowledge(c.Request().Context(), usecase.AcknowledgeInput{
		AlertID: req.AlertID,
		UserID:  middleware.GetUserID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, acknowledgeView{
		AlertID:        output.AlertID,
		ContactID:      output.ContactID,
		Acknowledged:   output.Acknowledged,
		AcknowledgedAt: output.AcknowledgedAt,
	}, "Alert acknowledged")
}

// ListReceived returns the requester's alert inbox, newest first.
func (h *AlertHandler) ListReceived(c echo.Context) error {
	views, err := h.uc.ListReceived(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]receivedAlertView, 0, len(views))
	for i := range views {
		v := &views[i]
		out = append(out, receivedAlertView{
			AlertID:        v.AlertID,
			SenderID:       v.SenderID,
			SenderName:     v.SenderName,
			EmergencyType:  v.EmergencyType,
			Message:        v.Message,
			Address:        v.Address,
			Latitude:       v.Latitude,
			Longitude:      v.Longitude,
			BatteryStatus:  v.BatteryStatus,
			CreatedAt:      v.CreatedAt,
			IsRecent:       v.Recent,
			CanAcknowledge: v.Acknowledgeable,
			Acknowledged:   v.Acknowledged,
			AcknowledgedAt: v.AcknowledgedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// ListSent returns the requester's raised alerts with per-recipient status.
func (h *AlertHandler) ListSent(c echo.Context) error {
	views, err := h.uc.ListSent(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]sentAlertView, 0, len(views))
	for i := range views {
		v := &views[i]
		recipients := make([]recipientStatusView, 0, len(v.Recipients))
		for j := range v.Recipients {
			r := &v.Recipients[j]
			recipients = append(recipients, recipientStatusView{
				ContactID:      r.ContactID,
				Name:           r.Name,
				Acknowledged:   r.Acknowledged,
				AcknowledgedAt: r.AcknowledgedAt,
			})
		}
		out = append(out, sentAlertView{
			AlertID:       v.AlertID,
			EmergencyType: v.EmergencyType,
			Message:       v.Message,
			Address:       v.Address,
			Latitude:      v.Latitude,
			Longitude:     v.Longitude,
			BatteryStatus: v.BatteryStatus,
			CreatedAt:     v.CreatedAt,
			IsRecent:      v.Recent,
			Recipients:    recipients,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteAlert deletes an alert the requester raised.
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	err := h.uc.DeleteAlert(c.Request().Context(), c.Param("sosId"), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert deleted")
}
