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

// CircleHandler holds dependencies for circle handlers.
type CircleHandler struct {
	uc     usecase.CircleUsecase
	logger *slog.Logger
}

func NewCircleHandler(uc usecase.CircleUsecase, logger *slog.Logger) *CircleHandler {
	return &CircleHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCircleRequest struct {
	Name string `json:"name" validate:"required"`
}

type joinCircleRequest struct {
	Code string `json:"code" validate:"required"`
}

type circleView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	AdminID   string    `json:"adminId"`
	CreatedAt time.Time `json:"createdAt"`
}

type memberView struct {
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	BatteryLevel *int       `json:"batteryLevel,omitempty"`
	PresenceAt   *time.Time `json:"presenceAt,omitempty"`
}

func toCircleView(c *entity.Circle) circleView {
	return circleView{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		AdminID:   c.AdminID,
		CreatedAt: c.CreatedAt,
	}
}

func toCircleViews(circles []entity.Circle) []circleView {
	views := make([]circleView, 0, len(circles))
	for i := range circles {
		views = append(views, toCircleView(&circles[i]))
	}

	return views
}

// CreateCircle creates a circle with the requester as admin.
func (h *CircleHandler) CreateCircle(c echo.Context) error {
	var req createCircleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid circle input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid circle input")
	}

	circle, err := h.uc.CreateCircle(c.Request().Context(), usecase.CreateCircleInput{
		AdminID: middleware.GetUserID(c),
		Name:    req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCircleView(circle), "Circle created")
}

// JoinCircle joins the requester to the circle matching the invite code.
func (h *CircleHandler) JoinCircle(c echo.Context) error {
	var req joinCircleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid join input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid join input")
	}

	circle, err := h.uc.JoinCircle(c.Request().Context(), usecase.JoinCircleInput{
		UserID: middleware.GetUserID(c),
		Code:   req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCircleView(circle), "Joined circle")
}

// ListCircles returns the circles the requester administers and has joined.
func (h *CircleHandler) ListCircles(c echo.Context) error {
	output, err := h.uc.ListCircles(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"created": toCircleViews(output.Created),
		"joined":  toCircleViews(output.Joined),
	}, "")
}

// ListMembers returns circle members with their presence snapshots.
func (h *CircleHandler) ListMembers(c echo.Context) error {
	members, err := h.uc.ListMembers(c.Request().Context(), c.Param("circleId"), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]memberView, 0, len(members))
	for i := range members {
		m := &members[i]
		views = append(views, memberView{
			UserID:       m.UserID,
			Name:         m.Name,
			Email:        m.Email,
			Role:         m.Role,
			Latitude:     m.Latitude,
			Longitude:    m.Longitude,
			BatteryLevel: m.BatteryLevel,
			PresenceAt:   m.PresenceAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// RemoveMember removes a member from the circle, admin only.
func (h *CircleHandler) RemoveMember(c echo.Context) error {
	err := h.uc.RemoveMember(c.Request().Context(), usecase.RemoveMemberInput{
		CircleID: c.Param("circleId"),
		AdminID:  middleware.GetUserID(c),
		MemberID: c.Param("memberId"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member removed")
}

// DeleteCircle deletes the circle, admin only.
func (h *CircleHandler) DeleteCircle(c echo.Context) error {
	err := h.uc.DeleteCircle(c.Request().Context(), c.Param("circleId"), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Circle deleted")
}
