package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/domain/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// moderationService implements the ModerationUsecase interface.
type moderationService struct {
	txManager repository.TransactionManager
	gameRepo  repository.GameRepository
	eventRepo repository.ModerationEventRepository
	publisher service.EventPublisher
	policy    entity.ModerationPolicy
	now       func() time.Time
	logger    *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GameRepo  repository.GameRepository
	EventRepo repository.ModerationEventRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewModerationService is the constructor for moderationService.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	var policy entity.ModerationPolicy
	if params.Config != nil && params.Config.Moderation != nil {
		policy = entity.ModerationPolicy{
			AllowReversal: params.Config.Moderation.AllowReversal,
			AllowReopen:   params.Config.Moderation.AllowReopen,
		}
	}

	return &moderationService{
		txManager: params.TxManager,
		gameRepo:  params.GameRepo,
		eventRepo: params.EventRepo,
		publisher: params.Publisher,
		policy:    policy,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *moderationService) Approve(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	return srv.moderate(ctx, actor, gameID, entity.ModerationApprove, reason)
}

func (srv *moderationService) Reject(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	return srv.moderate(ctx, actor, gameID, entity.ModerationReject, reason)
}

func (srv *moderationService) Reopen(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	return srv.moderate(ctx, actor, gameID, entity.ModerationReopen, reason)
}

// moderate runs load, transition, status update and audit insert in one transaction,
// then announces the decision. A publish failure does not fail the request.
func (srv *moderationService) moderate(
	ctx context.Context,
	actor *entity.Viewer,
	gameID uuid.UUID,
	action entity.ModerationAction,
	reason string,
) (*entity.Game, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	var (
		game     *entity.Game
		auditLog *entity.ModerationEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		var err error
		game, err = gameRepo.FindByID(ctx, gameID)
		if err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "moderation lookup")
			}

			return errors.Wrap(err, "failed to find game")
		}

		from := game.Status
		to, err := entity.Transition(from, action, actorRole(actor), srv.policy)
		if err != nil {
			return mapTransitionError(err)
		}

		if err := gameRepo.UpdateStatus(ctx, gameID, from, to); err != nil {
			if errors.Is(err, repository.ErrGameStatusChanged) {
				return errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails("status changed concurrently"), err.Error())
			}
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "moderation update")
			}

			return errors.Wrap(err, "failed to update game status")
		}

		auditLog = &entity.ModerationEvent{
			GameID:     gameID,
			ActorID:    actor.UserID,
			Action:     action,
			FromStatus: from,
			ToStatus:   to,
			Reason:     strings.TrimSpace(reason),
		}
		if err := repoFactory.ModerationEventRepo().Create(ctx, auditLog); err != nil {
			return errors.Wrap(err, "failed to record moderation event")
		}

		game.Status = to

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Moderation failed",
			slog.Any("gameID", gameID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute moderation transaction")
	}

	srv.log(ctx).Info("Listing moderated",
		slog.Any("gameID", gameID),
		slog.String("action", string(action)),
		slog.String("from", auditLog.FromStatus.String()),
		slog.String("to", auditLog.ToStatus.String()),
	)

	srv.publish(ctx, game, auditLog)

	return game, nil
}

func (srv *moderationService) publish(ctx context.Context, game *entity.Game, auditLog *entity.ModerationEvent) {
	if srv.publisher == nil {
		return
	}

	event := &entity.ListingModeratedEvent{
		EventID:    uuid.NewString(),
		GameID:     game.ID,
		GameName:   game.Name,
		OwnerID:    game.UserID,
		ActorID:    auditLog.ActorID,
		Action:     auditLog.Action,
		FromStatus: auditLog.FromStatus,
		ToStatus:   auditLog.ToStatus,
		Reason:     auditLog.Reason,
		OccurredAt: srv.now().UTC(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}
	if auditLog.ID != uuid.Nil {
		event.EventID = auditLog.ID.String()
	}

	if err := srv.publisher.PublishListingModerated(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish moderation event",
			slog.Any("gameID", game.ID),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

// History returns the audit trail of an existing listing.
func (srv *moderationService) History(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error) {
	if _, err := srv.gameRepo.FindByID(ctx, gameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGameNotFound, "history lookup")
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	events, err := srv.eventRepo.ListByGameID(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moderation events")
	}

	return events, nil
}

// Queue lists pending listings, oldest first.
func (srv *moderationService) Queue(ctx context.Context) ([]*entity.Game, error) {
	pending := entity.GameStatusPending

	games, err := srv.gameRepo.List(ctx, entity.GameFilter{Status: &pending, Oldest: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending games")
	}

	return games, nil
}

// SetFeatured toggles the featured flag. Admin only.
func (srv *moderationService) SetFeatured(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, featured bool) (*entity.Game, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "featuring requires the admin role")
	}

	var game *entity.Game
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		if err := gameRepo.SetFeatured(ctx, gameID, featured); err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "feature update")
			}

			return errors.Wrap(err, "failed to set featured flag")
		}

		var err error
		game, err = gameRepo.FindByID(ctx, gameID)
		if err != nil {
			return errors.Wrap(err, "failed to reload game")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set featured transaction")
	}

	srv.log(ctx).Info("Featured flag changed", slog.Any("gameID", gameID), slog.Bool("featured", featured))

	return game, nil
}

// actorRole resolves the role the transition table checks.
func actorRole(actor *entity.Viewer) entity.Role {
	if actor.IsAdmin() {
		return entity.RoleAdmin
	}

	return entity.RoleCreator
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, entity.ErrModeratorRequired):
		return errors.Wrap(domainerrors.ErrForbidden, err.Error())
	case errors.Is(err, entity.ErrTransitionNotAllowed):
		return errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails(err.Error()), "transition rejected")
	default:
		return errors.Wrap(err, "failed to apply transition")
	}
}
