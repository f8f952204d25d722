package usecase

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationUsecase defines the admin workflow on listings.
type ModerationUsecase interface {
	Approve(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error)
	Reject(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error)
	Reopen(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error)

	// History returns the audit trail of the listing, newest first.
	History(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error)

	// Queue returns the listings waiting for a decision, oldest first.
	Queue(ctx context.Context) ([]*entity.Game, error)

	SetFeatured(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, featured bool) (*entity.Game, error)
}
