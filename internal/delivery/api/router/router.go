// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"blvgames/config"
	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/router/handler"
	"blvgames/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const (
	// UploadImagesPath is exempt from the global body limit; it carries its own.
	UploadImagesPath = "/api/uploads/images"

	defaultUploadLimit = 5 << 20
	multipartOverhead  = 64 << 10
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	GameHandler      *handler.GameHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AdminHandler     *handler.AdminHandler
	UploadHandler    *handler.UploadHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	gameHandler      *handler.GameHandler
	analyticsHandler *handler.AnalyticsHandler
	adminHandler     *handler.AdminHandler
	uploadHandler    *handler.UploadHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		gameHandler:      params.GameHandler,
		analyticsHandler: params.AnalyticsHandler,
		adminHandler:     params.AdminHandler,
		uploadHandler:    params.UploadHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("", r.authHandler.Dispatch)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, auth.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, auth.Authenticate)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.userHandler.Get)
		usersGroup.PUT("", r.userHandler.Update, auth.Authenticate)
		usersGroup.GET("/whatsapp-qr", r.userHandler.WhatsAppQR)
	}

	gamesGroup := api.Group("/games")
	{
		gamesGroup.GET("", r.gameHandler.Get, auth.OptionalAuthenticate)
		gamesGroup.POST("", r.gameHandler.Create, auth.Authenticate, auth.RequireRole(entity.RoleCreator))
		gamesGroup.PUT("", r.gameHandler.Update, auth.Authenticate)
		gamesGroup.DELETE("", r.gameHandler.Delete, auth.Authenticate)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.POST("", r.analyticsHandler.Track)
		analyticsGroup.GET("", r.analyticsHandler.Stats, auth.Authenticate)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/games/pending", r.adminHandler.Pending)
		adminGroup.POST("/games/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/games/:id/reject", r.adminHandler.Reject)
		adminGroup.POST("/games/:id/reopen", r.adminHandler.Reopen)
		adminGroup.POST("/games/:id/feature", r.adminHandler.Feature)
		adminGroup.GET("/games/:id/history", r.adminHandler.History)
	}

	e.POST(UploadImagesPath, r.uploadHandler.UploadImage,
		echomiddleware.BodyLimit(r.uploadBodyLimit()),
		auth.Authenticate,
		auth.RequireRole(entity.RoleCreator),
	)
	e.GET("/uploads/*", r.uploadHandler.ServeImage)

	devicesGroup := api.Group("/devices")
	devicesGroup.Use(auth.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("", r.deviceHandler.UnregisterDevice)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RotateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.UnregisterDevice)
		devicesGroup.POST("/:id/test", r.deviceHandler.SendTestNotification)
	}
}

// uploadBodyLimit allows the configured file size plus room for the multipart framing.
func (r *router) uploadBodyLimit() string {
	limit := int64(defaultUploadLimit)
	if r.config != nil && r.config.Storage != nil && r.config.Storage.MaxUploadSize != "" {
		if parsed, err := bytes.Parse(r.config.Storage.MaxUploadSize); err == nil {
			limit = parsed
		}
	}

	return strconv.FormatInt(limit+multipartOverhead, 10) + "B"
}
