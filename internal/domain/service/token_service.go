package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Values of the "type" claim. Refresh tokens are rejected where an access
// token is expected and the other way around.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the HS256 tokens of the API.
type TokenService interface {
	// GenerateTokens returns an access token and a refresh token carrying roles.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken, refreshToken string, err error)
	// ValidateToken verifies signature, algorithm and expiry.
	ValidateToken(tokenString string) (*Claims, error)
	// HashToken is the digest persisted for a refresh token.
	HashToken(token string) string
	GetRefreshTokenDuration() time.Duration
}
