package usecase

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGameInput defines the fields of a new listing. A zero UserID or
// a nil Price counts as missing.
type CreateGameInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Price       *float64
	Category    string
	Images      []string
}

// ListGamesInput narrows a listing query before visibility rules apply.
type ListGamesInput struct {
	UserID   *uuid.UUID
	Status   *entity.GameStatus
	Category string
	Query    string
	Featured *bool
}

// GameUsecase defines listing operations. A nil viewer is an anonymous caller.
type GameUsecase interface {
	CreateGame(ctx context.Context, viewer *entity.Viewer, input *CreateGameInput) (*entity.Game, error)
	GetGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) (*entity.Game, error)
	ListGames(ctx context.Context, viewer *entity.Viewer, input *ListGamesInput) ([]*entity.Game, error)
	UpdateGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID, patch entity.GamePatch) error
	DeleteGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) error
}
