package postgres

import (
	"context"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gameImageRepository implements the repository.GameImageRepository interface.
type gameImageRepository struct {
	db *gorm.DB
}

// NewGameImageRepository is the constructor for gameImageRepository.
func NewGameImageRepository(db *gorm.DB) repository.GameImageRepository {
	return &gameImageRepository{
		db: db,
	}
}

// CreateBatch inserts the images in a single statement.
func (repo *gameImageRepository) CreateBatch(ctx context.Context, images []entity.GameImage) error {
	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.GameImageModel, 0, len(images))
	for i := range images {
		imageModels = append(imageModels, fromGameImageDomain(&images[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&imageModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGameNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate image display order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game images")
	}

	for i, imageM := range imageModels {
		images[i].ID = imageM.ID
		images[i].CreatedAt = imageM.CreatedAt
	}

	return nil
}

// DeleteByGameID removes every image of the listing.
func (repo *gameImageRepository) DeleteByGameID(ctx context.Context, gameID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Delete(&model.GameImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete game images")
	}

	return nil
}

func toGameImageDomain(data *model.GameImageModel) entity.GameImage {
	return entity.GameImage{
		ID:           data.ID,
		GameID:       data.GameID,
		ImageURL:     data.ImageURL,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
	}
}

func fromGameImageDomain(data *entity.GameImage) *model.GameImageModel {
	return &model.GameImageModel{
		ID:           data.ID,
		GameID:       data.GameID,
		ImageURL:     data.ImageURL,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
	}
}
