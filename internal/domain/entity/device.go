package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform identifies the client a push token belongs to.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	}

	return false
}

// UserDevice is a creator's device registered for moderation push notifications.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"`
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
