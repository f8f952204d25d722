package repository

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationEventRepository stores the moderation audit trail.
type ModerationEventRepository interface {
	Create(ctx context.Context, event *entity.ModerationEvent) error

	// ListByGameID returns the events of a listing, newest first.
	ListByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error)

	DeleteByGameID(ctx context.Context, gameID uuid.UUID) error
}
