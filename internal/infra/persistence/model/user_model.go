package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Role            string    `gorm:"type:varchar(20);not null;default:creator"`
	BusinessName    string    `gorm:"type:varchar(150)"`
	BusinessNameKey string    `gorm:"type:text;index"` // folded BusinessName for search
	Logo            string    `gorm:"type:text"`
	CoverPhoto      string    `gorm:"type:text"`
	Description     string    `gorm:"type:text"`
	Phone           string    `gorm:"type:varchar(30)"`
	Address         string    `gorm:"type:text"`
	Facebook        string    `gorm:"type:varchar(255)"`
	Instagram       string    `gorm:"type:varchar(255)"`
	Twitter         string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
