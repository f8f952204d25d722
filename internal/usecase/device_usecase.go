package usecase

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

type DeviceRegistration struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the devices a creator receives moderation pushes on.
// Every operation on an existing device checks that userID owns it.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (userID, DeviceID): registering the same
	// client again refreshes its token and reactivates it.
	RegisterDevice(ctx context.Context, userID uuid.UUID, registration *DeviceRegistration) (*entity.UserDevice, error)
	RotateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UnregisterDevice(ctx context.Context, userID, deviceID uuid.UUID) error
	SendTestNotification(ctx context.Context, userID, deviceID uuid.UUID) error
}
