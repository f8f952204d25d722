package repository

import (
	"context"
	"time"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// ClickRepository stores WhatsApp clicks and computes the daily rollups.
type ClickRepository interface {
	Create(ctx context.Context, click *entity.WhatsAppClick) error

	// DailyStatsByUser returns at most limit days of the studio's clicks, most recent first.
	DailyStatsByUser(ctx context.Context, userID uuid.UUID, loc *time.Location, limit int) ([]entity.DailyClickStat, error)

	// DailyGlobalStats returns at most limit days of marketplace-wide clicks, most recent first.
	DailyGlobalStats(ctx context.Context, loc *time.Location, limit int) ([]entity.DailyGlobalStat, error)
}
