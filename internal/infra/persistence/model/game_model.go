package model

import (
	"time"

	"github.com/google/uuid"
)

// GameModel mirrors the 'games' table.
type GameModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	NameKey     string    `gorm:"type:text;not null;index"` // folded Name for search
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	CategoryKey string    `gorm:"type:text;not null;index"` // folded Category for filtering
	Status      string    `gorm:"type:varchar(20);not null;default:pending;index"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner  *UserModel       `gorm:"foreignKey:UserID"`
	Images []GameImageModel `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}

// GameImageModel mirrors the 'game_images' table.
type GameImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GameID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_images_order"`
	ImageURL     string    `gorm:"type:text;not null"`
	DisplayOrder int       `gorm:"not null;uniqueIndex:idx_game_images_order"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameImageModel) TableName() string {
	return "game_images"
}

// ModerationEventModel mirrors the 'moderation_events' table.
type ModerationEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GameID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"type:varchar(20);not null"`
	FromStatus string    `gorm:"type:varchar(20);not null"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	Reason     string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ModerationEventModel) TableName() string {
	return "moderation_events"
}
