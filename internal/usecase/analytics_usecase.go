package usecase

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackClickInput identifies the contacted studio and, optionally, the listing.
type TrackClickInput struct {
	UserID uuid.UUID
	GameID *uuid.UUID
}

// AnalyticsUsecase records WhatsApp clicks and reports daily rollups.
type AnalyticsUsecase interface {
	TrackClick(ctx context.Context, input *TrackClickInput) error

	// UserStats is readable by the studio itself and by admins.
	UserStats(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID) ([]entity.DailyClickStat, error)

	// GlobalStats is readable by admins only.
	GlobalStats(ctx context.Context, viewer *entity.Viewer) ([]entity.DailyGlobalStat, error)
}
