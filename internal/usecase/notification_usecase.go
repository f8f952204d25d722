package usecase

import (
	"context"

	"blvgames/internal/domain/entity"
)

// NotifyResult summarizes one fan-out of a moderation outcome.
type NotifyResult struct {
	Sent     int
	Failed   int
	Disabled int // Devices deactivated because their token was rejected.
}

// NotificationUsecase pushes moderation outcomes to the listing owner's devices.
type NotificationUsecase interface {
	NotifyListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) (*NotifyResult, error)
}
