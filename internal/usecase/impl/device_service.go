package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/domain/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	devices repository.DeviceRepository
	pusher  service.NotificationService
	logger  *slog.Logger
}

func NewDeviceService(
	devices repository.DeviceRepository,
	pusher service.NotificationService,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		devices: devices,
		pusher:  pusher,
		logger:  logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, registration *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	if err := requireFields(
		field{"fcm_token", registration.FCMToken},
		field{"device_id", registration.DeviceID},
		field{"platform", registration.Platform},
	); err != nil {
		return nil, err
	}

	platform := entity.DevicePlatform(strings.ToLower(strings.TrimSpace(registration.Platform)))
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: strings.TrimSpace(registration.FCMToken),
		DeviceID: strings.TrimSpace(registration.DeviceID),
		Platform: platform,
	}
	if err := s.devices.Upsert(ctx, device); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateDevice):
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("fcm_token"), err.Error())
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	s.log(ctx).Info("Device registered",
		slog.Any("userID", userID),
		slog.Any("deviceID", device.ID),
		slog.String("platform", string(platform)),
	)

	return device, nil
}

func (s *deviceService) RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	fcmToken = strings.TrimSpace(fcmToken)
	if err := requireFields(field{"fcm_token", fcmToken}); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.devices.SetToken(ctx, deviceID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("fcm_token"), err.Error())
		}

		return errors.Wrap(err, "failed to rotate device token")
	}

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.devices.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) UnregisterDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.owned(ctx, userID, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return nil
	}

	if err := s.devices.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to unregister device")
	}

	return nil
}

// SendTestNotification lets a creator check that pushes reach the device.
func (s *deviceService) SendTestNotification(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.owned(ctx, userID, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return errors.Wrap(domainerrors.ErrDeviceNotFound, "device is inactive")
	}

	msg := service.PushMessage{
		Title: "blvgames.bo",
		Body:  "Notificaciones activadas",
		Data:  map[string]string{"device_id": device.ID.String(), "type": "test"},
	}
	if err := s.pusher.Send(ctx, device.FCMToken, msg); err != nil {
		s.log(ctx).Warn("Test notification failed", slog.Any("deviceID", device.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send test notification")
	}

	return nil
}

func (s *deviceService) owned(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.devices.Get(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device lookup")
		}

		return nil, errors.Wrap(err, "failed to load device")
	}
	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "device belongs to another user")
	}

	return device, nil
}
