package entity

import (
	"time"

	"github.com/google/uuid"
)

// WhatsAppClick records a customer opening a WhatsApp chat with a studio.
type WhatsAppClick struct {
	ID        uuid.UUID
	UserID    uuid.UUID  // Studio that was contacted.
	GameID    *uuid.UUID // Listing the click came from, nil for profile-level clicks.
	ClickedAt time.Time
}

// DailyClickStat is one day of a studio's click rollup.
type DailyClickStat struct {
	Date         string `json:"date"` // YYYY-MM-DD in the analytics time zone
	TotalClicks  int64  `json:"total_clicks"`
	GamesClicked int64  `json:"games_clicked"`
}

// DailyGlobalStat is one day of the marketplace-wide click rollup.
type DailyGlobalStat struct {
	Date        string `json:"date"`
	TotalClicks int64  `json:"total_clicks"`
	TotalUsers  int64  `json:"total_users"`
}
