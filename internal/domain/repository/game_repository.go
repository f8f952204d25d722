package repository

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrGameNotFound is returned when a listing does not exist.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameStatusChanged is returned when a status update finds the listing in a different status than expected.
	ErrGameStatusChanged = errors.New("game status changed concurrently")
	// ErrInvalidReference is returned when a foreign key points to a missing row.
	ErrInvalidReference = errors.New("referenced row does not exist")
)

// GameRepository defines persistence for listings. Reads include the
// ordered images and the owner summary.
type GameRepository interface {
	// Create persists the listing row. Images are stored through GameImageRepository.
	Create(ctx context.Context, game *entity.Game) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// List returns listings matching the filter, featured first then newest first
	// (oldest first when filter.Oldest is set).
	List(ctx context.Context, filter entity.GameFilter) ([]*entity.Game, error)

	// Update applies the scalar fields of the patch in a single statement.
	Update(ctx context.Context, id uuid.UUID, patch entity.GamePatch) error

	// UpdateStatus moves the listing from one status to another, failing with
	// ErrGameStatusChanged when the stored status is not from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.GameStatus) error

	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	// Delete removes the listing row. Deleting a missing row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// GameImageRepository defines persistence for listing images.
type GameImageRepository interface {
	// CreateBatch inserts the images in order.
	CreateBatch(ctx context.Context, images []entity.GameImage) error

	// DeleteByGameID removes every image of the listing.
	DeleteByGameID(ctx context.Context, gameID uuid.UUID) error
}
