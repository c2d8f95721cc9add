// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"
	deliverymiddleware "lifeline/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	CircleHandler       *handler.CircleHandler
	AlertHandler        *handler.AlertHandler
	DeviceHandler       *handler.DeviceHandler
	CardHandler         *handler.CardHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.Use(p.RequestIDMiddleware.Process)
	e.Use(p.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Public card view for first responders who scanned a QR code.
	e.GET("/cards/:userId", p.CardHandler.GetPublicCard)

	// Everything below requires a valid access token.
	auth := p.AuthMiddleware.Authenticate

	userGroup := e.Group("/user", auth)
	{
		userGroup.GET("/profile", p.ProfileHandler.GetProfile)
		userGroup.PUT("/profile", p.ProfileHandler.UpdateProfile)
		userGroup.PUT("/presence", p.ProfileHandler.UpdatePresence)
	}

	circleGroup := e.Group("/circles", auth)
	{
		circleGroup.POST("", p.CircleHandler.CreateCircle)
		circleGroup.POST("/join", p.CircleHandler.JoinCircle)
		circleGroup.GET("", p.CircleHandler.ListCircles)
		circleGroup.GET("/:circleId/members", p.CircleHandler.ListMembers)
		circleGroup.DELETE("/:circleId/members/:memberId", p.CircleHandler.RemoveMember)
		circleGroup.DELETE("/:circleId", p.CircleHandler.DeleteCircle)
	}

	sosGroup := e.Group("/sos", auth)
	{
		sosGroup.POST("", p.AlertHandler.RaiseAlert)
		sosGroup.POST("/sendToAll", p.AlertHandler.RaiseAlertToAll)
		sosGroup.POST("/acknowledge", p.AlertHandler.Acknowledge)
	}

	sosDetailsGroup := e.Group("/sos-details", auth)
	{
		sosDetailsGroup.GET("", p.AlertHandler.ListReceived)
		sosDetailsGroup.GET("/sent", p.AlertHandler.ListSent)
		sosDetailsGroup.DELETE("/:sosId", p.AlertHandler.DeleteAlert)
	}

	deviceGroup := e.Group("/devices", auth)
	{
		deviceGroup.POST("", p.DeviceHandler.RegisterDevice)
		deviceGroup.DELETE("", p.DeviceHandler.UnregisterDevice)
	}

	cardGroup := e.Group("/qr-codes", auth)
	{
		cardGroup.POST("/card", p.CardHandler.SaveCard)
		cardGroup.GET("/card", p.CardHandler.GetOwnCard)
		cardGroup.DELETE("/card", p.CardHandler.DeleteCard)
		cardGroup.GET("/me", p.CardHandler.GetQRCode)
	}

	// Test routes are only registered when explicitly enabled.
	if p.Config.TestRoutes != nil && p.Config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", p.TestHandler.TestPublicEndpoint)
			testGroup.GET("/auth", p.TestHandler.TestAuthMiddleware, auth)
		}
	}
}
