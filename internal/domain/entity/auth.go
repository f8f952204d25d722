package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider; ProviderUserID holds the
// normalized email.
const ProviderTypeEmail = "email"

// Authentication is a stored login credential of a user.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string
	PasswordHash   string // bcrypt
	CreatedAt      time.Time
}

// RefreshToken is an open session. Only the SHA-256 of the issued token is kept.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session can no longer be refreshed at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
