package postgres

import (
	"context"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"
	"blvgames/internal/infra/textfold"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameRepository implements the repository.GameRepository interface.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{
		db: db,
	}
}

// Create persists the listing row.
func (repo *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Images").Create(gameM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game")
	}

	game.ID = gameM.ID
	game.CreatedAt = gameM.CreatedAt
	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// FindByID retrieves a listing with its images and owner.
func (repo *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	var gameM model.GameModel

	if err := repo.withRelations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by id")
	}

	return toGameDomain(&gameM), nil
}

// List returns listings matching the filter.
func (repo *gameRepository) List(ctx context.Context, filter entity.GameFilter) ([]*entity.Game, error) {
	var gameModels []*model.GameModel

	query := repo.withRelations(repo.db.WithContext(ctx).Model(&model.GameModel{}))
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != "" {
		query = query.Where("category_key = ?", textfold.Fold(filter.Category))
	}
	if filter.Query != "" {
		query = query.Where("name_key LIKE ?", textfold.LikePattern(filter.Query))
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	if filter.Oldest {
		query = query.Order("created_at ASC")
	} else {
		query = query.Order("featured DESC").Order("created_at DESC")
	}

	if err := query.Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// Update applies the scalar fields of the patch in one UPDATE statement.
func (repo *gameRepository) Update(ctx context.Context, id uuid.UUID, patch entity.GamePatch) error {
	columns := patch.Columns()
	if len(columns) == 0 {
		return nil
	}
	if patch.Name != nil {
		columns["name_key"] = textfold.Fold(*patch.Name)
	}
	if patch.Category != nil {
		columns["category_key"] = textfold.Fold(*patch.Category)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update game")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// UpdateStatus performs a compare-and-set on the status column.
func (repo *gameRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.GameStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update game status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGameStatusChanged
	}

	return nil
}

// SetFeatured toggles the featured flag.
func (repo *gameRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		Update("featured", featured)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update featured flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// Delete removes the listing row. A missing row is not an error.
func (repo *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GameModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete game")
	}

	return nil
}

func (repo *gameRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("display_order ASC")
		}).
		Preload("Owner")
}

// --- Mapper Functions ---

func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	images := make([]entity.GameImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toGameImageDomain(&data.Images[i]))
	}

	return &entity.Game{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Status:      entity.GameStatus(data.Status),
		Featured:    data.Featured,
		Images:      images,
		Owner:       toOwnerSummary(data.Owner),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	return &model.GameModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		NameKey:     textfold.Fold(data.Name),
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		CategoryKey: textfold.Fold(data.Category),
		Status:      data.Status.String(),
		Featured:    data.Featured,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
