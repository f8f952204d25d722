package postgres

import (
	"context"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moderationEventRepository implements the repository.ModerationEventRepository interface.
type moderationEventRepository struct {
	db *gorm.DB
}

// NewModerationEventRepository is the constructor for moderationEventRepository.
func NewModerationEventRepository(db *gorm.DB) repository.ModerationEventRepository {
	return &moderationEventRepository{
		db: db,
	}
}

// Create appends an event to the audit trail.
func (repo *moderationEventRepository) Create(ctx context.Context, event *entity.ModerationEvent) error {
	eventM := &model.ModerationEventModel{
		ID:         event.ID,
		GameID:     event.GameID,
		ActorID:    event.ActorID,
		Action:     string(event.Action),
		FromStatus: event.FromStatus.String(),
		ToStatus:   event.ToStatus.String(),
		Reason:     event.Reason,
		CreatedAt:  event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create moderation event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// ListByGameID returns the events of a listing, newest first.
func (repo *moderationEventRepository) ListByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error) {
	var eventModels []*model.ModerationEventModel

	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list moderation events")
	}

	events := make([]*entity.ModerationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.ModerationEvent{
			ID:         eventM.ID,
			GameID:     eventM.GameID,
			ActorID:    eventM.ActorID,
			Action:     entity.ModerationAction(eventM.Action),
			FromStatus: entity.GameStatus(eventM.FromStatus),
			ToStatus:   entity.GameStatus(eventM.ToStatus),
			Reason:     eventM.Reason,
			CreatedAt:  eventM.CreatedAt,
		})
	}

	return events, nil
}

// DeleteByGameID removes the audit trail of a listing.
func (repo *moderationEventRepository) DeleteByGameID(ctx context.Context, gameID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Delete(&model.ModerationEventModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete moderation events")
	}

	return nil
}
