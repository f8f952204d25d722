package repository

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice means the push token is already registered to another user.
	ErrDuplicateDevice = errors.New("push token registered elsewhere")
)

// DeviceRepository stores the push endpoints of creator devices. A device is
// identified by the pair (user, client device id).
type DeviceRepository interface {
	// Upsert inserts the device or, when the user already registered the same
	// client device, refreshes its token and platform and reactivates it.
	// device.ID is set to the stored row's ID.
	Upsert(ctx context.Context, device *entity.UserDevice) error
	Get(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)
	SetToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	// DeactivateTokens disables every device holding one of the tokens and
	// reports how many rows changed.
	DeactivateTokens(ctx context.Context, fcmTokens []string) (int64, error)
}
