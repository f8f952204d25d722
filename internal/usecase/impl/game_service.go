package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	txManager  repository.TransactionManager
	gameRepo   repository.GameRepository
	categories categoryMatcher
	maxImages  int
	logger     *slog.Logger
}

// GameServiceParams holds dependencies for GameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GameRepo  repository.GameRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	var (
		categories []string
		maxImages  int
	)
	if params.Config != nil && params.Config.Games != nil {
		categories = params.Config.Games.Categories
		maxImages = params.Config.Games.MaxImages
	}

	return &gameService{
		txManager:  params.TxManager,
		gameRepo:   params.GameRepo,
		categories: newCategoryMatcher(categories),
		maxImages:  maxImages,
		logger:     params.Logger,
	}
}

func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGame stores a pending listing and its images in one transaction.
// Any status in the request is ignored.
func (srv *gameService) CreateGame(ctx context.Context, viewer *entity.Viewer, input *usecase.CreateGameInput) (*entity.Game, error) {
	if viewer == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	userID := ""
	if input.UserID != uuid.Nil {
		userID = input.UserID.String()
	}
	// A zero price counts as empty, like the other falsy values.
	price := ""
	if input.Price != nil && *input.Price != 0 {
		price = strconv.FormatFloat(*input.Price, 'f', -1, 64)
	}
	if err := requireFields(
		field{"user_id", userID},
		field{"name", input.Name},
		field{"description", input.Description},
		field{"price", price},
		field{"category", input.Category},
	); err != nil {
		return nil, err
	}

	if !canManage(viewer, input.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "listing for another user")
	}
	if *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price")
	}
	category, err := srv.categories.resolve(input.Category)
	if err != nil {
		return nil, err
	}
	if err := srv.checkImageCount(input.Images); err != nil {
		return nil, err
	}

	game := &entity.Game{
		UserID:      input.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       *input.Price,
		Category:    category,
		Status:      entity.GameStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GameRepo().Create(ctx, game); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return errors.Wrap(domainerrors.ErrInvalidReference, "listing owner")
			}

			return errors.Wrap(err, "failed to create game")
		}

		game.Images = entity.NewGameImages(game.ID, input.Images)
		if len(game.Images) == 0 {
			return nil
		}
		if err := repoFactory.GameImageRepo().CreateBatch(ctx, game.Images); err != nil {
			return errors.Wrap(err, "failed to create game images")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create game", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create game transaction")
	}

	srv.log(ctx).Info("Game created", slog.Any("gameID", game.ID), slog.Any("userID", game.UserID))

	return game, nil
}

// GetGame hides non-approved listings from everyone but the owner and admins.
func (srv *gameService) GetGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGameNotFound, "game lookup")
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	if !game.IsVisibleTo(viewer) {
		return nil, errors.Wrap(domainerrors.ErrGameNotFound, "game not visible")
	}

	return game, nil
}

// ListGames applies the visibility rules to the requested filter.
func (srv *gameService) ListGames(ctx context.Context, viewer *entity.Viewer, input *usecase.ListGamesInput) ([]*entity.Game, error) {
	filter := entity.GameFilter{
		UserID:   input.UserID,
		Status:   input.Status,
		Category: strings.TrimSpace(input.Category),
		Query:    strings.TrimSpace(input.Query),
		Featured: input.Featured,
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status")
	}

	ownQuery := viewer != nil && input.UserID != nil && *input.UserID == viewer.UserID
	if !viewer.IsAdmin() && !ownQuery {
		approved := entity.GameStatusApproved
		filter.Status = &approved
	}

	games, err := srv.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return games, nil
}

// UpdateGame applies an owner's partial update. Images are replaced as a whole in the same transaction.
func (srv *gameService) UpdateGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID, patch entity.GamePatch) error {
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}
	if patch.IsEmpty() {
		return domainerrors.ErrNoFieldsToUpdate
	}
	if err := srv.normalizePatch(&patch); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		game, err := gameRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "game lookup")
			}

			return errors.Wrap(err, "failed to find game")
		}
		if game.UserID != viewer.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "game belongs to another user")
		}

		if err := gameRepo.Update(ctx, id, patch); err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "game update")
			}

			return errors.Wrap(err, "failed to update game")
		}

		if patch.Images == nil {
			return nil
		}

		imageRepo := repoFactory.GameImageRepo()
		if err := imageRepo.DeleteByGameID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete game images")
		}
		images := entity.NewGameImages(id, *patch.Images)
		if len(images) == 0 {
			return nil
		}
		if err := imageRepo.CreateBatch(ctx, images); err != nil {
			return errors.Wrap(err, "failed to create game images")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute update game transaction")
	}

	srv.log(ctx).Info("Game updated", slog.Any("gameID", id))

	return nil
}

// DeleteGame removes the listing with its images and audit trail. A missing listing is not an error.
func (srv *gameService) DeleteGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) error {
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	deleted := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		game, err := gameRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find game")
		}
		if !canManage(viewer, game.UserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "game belongs to another user")
		}

		if err := repoFactory.GameImageRepo().DeleteByGameID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete game images")
		}
		if err := repoFactory.ModerationEventRepo().DeleteByGameID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete moderation events")
		}
		if err := gameRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete game")
		}
		deleted = true

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete game transaction")
	}

	if deleted {
		srv.log(ctx).Info("Game deleted", slog.Any("gameID", id), slog.Any("actorID", viewer.UserID))
	}

	return nil
}

// normalizePatch trims text fields and validates them against the listing rules.
func (srv *gameService) normalizePatch(patch *entity.GamePatch) error {
	trim := func(name string, v *string) error {
		if v == nil {
			return nil
		}
		*v = strings.TrimSpace(*v)
		if *v == "" {
			return domainerrors.NewMissingFieldError(name)
		}

		return nil
	}
	if err := trim("name", patch.Name); err != nil {
		return err
	}
	if err := trim("description", patch.Description); err != nil {
		return err
	}
	if err := trim("category", patch.Category); err != nil {
		return err
	}

	if patch.Price != nil && *patch.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price")
	}
	if patch.Category != nil {
		category, err := srv.categories.resolve(*patch.Category)
		if err != nil {
			return err
		}
		patch.Category = &category
	}
	if patch.Images != nil {
		return srv.checkImageCount(*patch.Images)
	}

	return nil
}

func (srv *gameService) checkImageCount(urls []string) error {
	if srv.maxImages <= 0 {
		return nil
	}
	count := 0
	for _, u := range urls {
		if u != "" {
			count++
		}
	}
	if count > srv.maxImages {
		return domainerrors.ErrTooManyImages.WithDetails(strconv.Itoa(srv.maxImages))
	}

	return nil
}
