package impl

import (
	"context"
	"testing"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	mockRepo "blvgames/internal/mocks/repository"
	mockSvc "blvgames/internal/mocks/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationFixtures struct {
	service   usecase.ModerationUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	gameRepo  *mockRepo.MockGameRepository
	eventRepo *mockRepo.MockModerationEventRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestModerationService(t *testing.T, policy config.ModerationConfig) moderationFixtures {
	fx := moderationFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		gameRepo:  mockRepo.NewMockGameRepository(t),
		eventRepo: mockRepo.NewMockModerationEventRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	cfg := newTestConfig(0)
	cfg.Moderation = &policy
	fx.service = NewModerationService(ModerationServiceParams{
		TxManager: fx.txManager,
		GameRepo:  fx.gameRepo,
		EventRepo: fx.eventRepo,
		Publisher: fx.publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return fx
}

// expectDecision wires one successful moderation transaction for game.
func (fx moderationFixtures) expectDecision(game *entity.Game, to entity.GameStatus) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().GameRepo().Return(fx.gameRepo)
	fx.factory.EXPECT().ModerationEventRepo().Return(fx.eventRepo)
	fx.gameRepo.EXPECT().FindByID(mock.Anything, game.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Game, error) {
			copied := *game

			return &copied, nil
		}).Once()
	fx.gameRepo.EXPECT().UpdateStatus(mock.Anything, game.ID, game.Status, to).Return(nil).Once()
}

func TestModerationService_RetroRacerScenario(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	admin := adminViewer()
	game := &entity.Game{ID: uuid.New(), UserID: uuid.New(), Name: "Retro Racer", Status: entity.GameStatusPending}
	eventID := uuid.New()

	fx.expectDecision(game, entity.GameStatusApproved)
	fx.eventRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *entity.ModerationEvent) bool {
			return e.GameID == game.ID &&
				e.ActorID == admin.UserID &&
				e.Action == entity.ModerationApprove &&
				e.FromStatus == entity.GameStatusPending &&
				e.ToStatus == entity.GameStatusApproved &&
				e.Reason == "looks great"
		})).
		Run(func(_ context.Context, e *entity.ModerationEvent) {
			e.ID = eventID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishListingModerated(mock.Anything, mock.MatchedBy(func(ev *entity.ListingModeratedEvent) bool {
			return ev.EventID == eventID.String() &&
				ev.OwnerID == game.UserID &&
				ev.GameName == "Retro Racer" &&
				ev.ToStatus == entity.GameStatusApproved &&
				ev.RequestID == "req-42"
		})).
		Return(nil)

	approved, err := fx.service.Approve(ctx, admin, game.ID, "  looks great ")
	require.NoError(t, err)
	assert.Equal(t, entity.GameStatusApproved, approved.Status)

	// Reversal is disabled by default, so a second decision is refused and nothing is published.
	game.Status = entity.GameStatusApproved
	fx.gameRepo.EXPECT().FindByID(mock.Anything, game.ID).Return(game, nil).Once()

	_, err = fx.service.Reject(ctx, admin, game.ID, "changed my mind")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestModerationService_AllowReversal(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{AllowReversal: true})

	game := &entity.Game{ID: uuid.New(), UserID: uuid.New(), Status: entity.GameStatusApproved}
	fx.expectDecision(game, entity.GameStatusRejected)
	fx.eventRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ModerationEvent")).Return(nil)
	fx.publisher.EXPECT().PublishListingModerated(mock.Anything, mock.Anything).Return(nil)

	rejected, err := fx.service.Reject(context.Background(), adminViewer(), game.ID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.GameStatusRejected, rejected.Status)
}

func TestModerationService_Reopen(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{AllowReopen: true})

	game := &entity.Game{ID: uuid.New(), UserID: uuid.New(), Status: entity.GameStatusRejected}
	fx.expectDecision(game, entity.GameStatusPending)
	fx.eventRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ModerationEvent")).Return(nil)
	fx.publisher.EXPECT().PublishListingModerated(mock.Anything, mock.Anything).Return(nil)

	reopened, err := fx.service.Reopen(context.Background(), adminViewer(), game.ID, "new build uploaded")

	require.NoError(t, err)
	assert.Equal(t, entity.GameStatusPending, reopened.Status)
}

func TestModerationService_PublishFailureDoesNotFailDecision(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	game := &entity.Game{ID: uuid.New(), UserID: uuid.New(), Status: entity.GameStatusPending}
	fx.expectDecision(game, entity.GameStatusRejected)
	fx.eventRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ModerationEvent")).Return(nil)
	fx.publisher.EXPECT().PublishListingModerated(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	rejected, err := fx.service.Reject(context.Background(), adminViewer(), game.ID, "blurry screenshots")

	require.NoError(t, err)
	assert.Equal(t, entity.GameStatusRejected, rejected.Status)
}

func TestModerationService_CreatorCannotModerate(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	owner := uuid.New()
	game := &entity.Game{ID: uuid.New(), UserID: owner, Status: entity.GameStatusPending}
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().GameRepo().Return(fx.gameRepo)
	fx.gameRepo.EXPECT().FindByID(mock.Anything, game.ID).Return(game, nil)

	_, err := fx.service.Approve(context.Background(), creatorViewer(owner), game.ID, "")

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestModerationService_ConcurrentStatusChange(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	game := &entity.Game{ID: uuid.New(), Status: entity.GameStatusPending}
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().GameRepo().Return(fx.gameRepo)
	fx.gameRepo.EXPECT().FindByID(mock.Anything, game.ID).Return(game, nil)
	fx.gameRepo.EXPECT().
		UpdateStatus(mock.Anything, game.ID, entity.GameStatusPending, entity.GameStatusApproved).
		Return(repository.ErrGameStatusChanged)

	_, err := fx.service.Approve(context.Background(), adminViewer(), game.ID, "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestModerationService_Anonymous(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	_, err := fx.service.Approve(context.Background(), nil, uuid.New(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestModerationService_History(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	ctx := context.Background()
	gameID := uuid.New()
	events := []*entity.ModerationEvent{{GameID: gameID, Action: entity.ModerationApprove}}
	fx.gameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)
	fx.eventRepo.EXPECT().ListByGameID(ctx, gameID).Return(events, nil)

	got, err := fx.service.History(ctx, gameID)

	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestModerationService_History_UnknownGame(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	gameID := uuid.New()
	fx.gameRepo.EXPECT().FindByID(mock.Anything, gameID).Return(nil, repository.ErrGameNotFound)

	_, err := fx.service.History(context.Background(), gameID)

	assert.True(t, errors.Is(err, domainerrors.ErrGameNotFound))
}

func TestModerationService_Queue(t *testing.T) {
	fx := createTestModerationService(t, config.ModerationConfig{})

	fx.gameRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f entity.GameFilter) bool {
			return f.Oldest && f.Status != nil && *f.Status == entity.GameStatusPending
		})).
		Return([]*entity.Game{}, nil)

	games, err := fx.service.Queue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestModerationService_SetFeatured(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		fx := createTestModerationService(t, config.ModerationConfig{})

		gameID := uuid.New()
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().GameRepo().Return(fx.gameRepo)
		fx.gameRepo.EXPECT().SetFeatured(mock.Anything, gameID, true).Return(nil)
		fx.gameRepo.EXPECT().FindByID(mock.Anything, gameID).Return(&entity.Game{ID: gameID, Featured: true}, nil)

		game, err := fx.service.SetFeatured(context.Background(), adminViewer(), gameID, true)

		require.NoError(t, err)
		assert.True(t, game.Featured)
	})

	t.Run("creator", func(t *testing.T) {
		fx := createTestModerationService(t, config.ModerationConfig{})

		_, err := fx.service.SetFeatured(context.Background(), creatorViewer(uuid.New()), uuid.New(), true)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("unknown game", func(t *testing.T) {
		fx := createTestModerationService(t, config.ModerationConfig{})

		gameID := uuid.New()
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().GameRepo().Return(fx.gameRepo)
		fx.gameRepo.EXPECT().SetFeatured(mock.Anything, gameID, false).Return(repository.ErrGameNotFound)

		_, err := fx.service.SetFeatured(context.Background(), adminViewer(), gameID, false)

		assert.True(t, errors.Is(err, domainerrors.ErrGameNotFound))
	})
}
