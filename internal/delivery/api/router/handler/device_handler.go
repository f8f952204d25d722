package handler

import (
	"log/slog"
	"net/http"

	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	deliverycontext "blvgames/internal/delivery/context"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required"`
}

// RotateTokenRequest is the body of PUT /api/devices/:id/token.
type RotateTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), viewer.UserID, &usecase.DeviceRegistration{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, response.Body{"device": device})
}

// ListDevices returns the caller's active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), viewer.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{"devices": devices})
}

// RotateToken replaces the push token of one of the caller's devices.
func (h *DeviceHandler) RotateToken(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req RotateTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.RotateToken(c.Request().Context(), viewer.UserID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// UnregisterDevice stops pushes to a device.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), viewer.UserID, deviceID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// SendTestNotification pushes a test message to one of the caller's devices.
func (h *DeviceHandler) SendTestNotification(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.SendTestNotification(c.Request().Context(), viewer.UserID, deviceID); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Test notification failed",
			slog.Any("deviceID", deviceID),
			slog.Any("error", err),
		)

		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// deviceIDParam accepts both /api/devices/:id and /api/devices?id=.
func deviceIDParam(c echo.Context) (uuid.UUID, error) {
	if c.Param("id") != "" {
		return pathUUID(c, "id")
	}

	return requiredQueryUUID(c, "id")
}
