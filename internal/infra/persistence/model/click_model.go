package model

import (
	"time"

	"github.com/google/uuid"
)

// WhatsAppClickModel mirrors the append-only 'whatsapp_clicks' table.
type WhatsAppClickModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GameID    *uuid.UUID `gorm:"type:uuid"`
	ClickedAt time.Time  `gorm:"type:timestamptz;not null;default:now();index"`
}

// TableName explicitly sets the table name for GORM.
func (WhatsAppClickModel) TableName() string {
	return "whatsapp_clicks"
}

// DailyClickRow receives the per-studio rollup.
type DailyClickRow struct {
	Day          time.Time
	TotalClicks  int64
	GamesClicked int64
}

// DailyGlobalRow receives the marketplace-wide rollup.
type DailyGlobalRow struct {
	Day         time.Time
	TotalClicks int64
	TotalUsers  int64
}
