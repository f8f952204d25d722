package impl

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"blvgames/config"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	mockRepo "blvgames/internal/mocks/repository"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockClickRepository) {
	t.Helper()

	clickRepo := mockRepo.NewMockClickRepository(t)
	svc, err := NewAnalyticsService(AnalyticsServiceParams{
		ClickRepo: clickRepo,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc, clickRepo
}

func TestNewAnalyticsService_InvalidTimezone(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Analytics = &config.AnalyticsConfig{Timezone: "Mars/Olympus_Mons"}

	svc, err := NewAnalyticsService(AnalyticsServiceParams{Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestAnalyticsService_TrackClick(t *testing.T) {
	svc, clickRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	clickRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.WhatsAppClick) bool {
			return c.UserID == userID && c.GameID != nil && *c.GameID == gameID && !c.ClickedAt.IsZero()
		})).
		Return(nil)

	require.NoError(t, svc.TrackClick(ctx, &usecase.TrackClickInput{UserID: userID, GameID: &gameID}))
}

func TestAnalyticsService_TrackClick_Errors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		svc, _ := createTestAnalyticsService(t)

		err := svc.TrackClick(context.Background(), &usecase.TrackClickInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrMissingField))
	})

	t.Run("unknown studio", func(t *testing.T) {
		svc, clickRepo := createTestAnalyticsService(t)

		clickRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrInvalidReference)

		err := svc.TrackClick(context.Background(), &usecase.TrackClickInput{UserID: uuid.New()})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
	})
}

func TestAnalyticsService_UserStats(t *testing.T) {
	owner := uuid.New()
	stats := []entity.DailyClickStat{{Date: "2026-10-01", TotalClicks: 3, GamesClicked: 1}}

	t.Run("owner reads in the configured zone", func(t *testing.T) {
		svc, clickRepo := createTestAnalyticsService(t)

		clickRepo.EXPECT().
			DailyStatsByUser(mock.Anything, owner, mock.MatchedBy(func(loc *time.Location) bool {
				return loc.String() == "America/La_Paz"
			}), 30).
			Return(stats, nil)

		got, err := svc.UserStats(context.Background(), creatorViewer(owner), owner)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("another creator", func(t *testing.T) {
		svc, _ := createTestAnalyticsService(t)

		_, err := svc.UserStats(context.Background(), creatorViewer(uuid.New()), owner)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := createTestAnalyticsService(t)

		_, err := svc.UserStats(context.Background(), nil, owner)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestAnalyticsService_GlobalStats(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		svc, clickRepo := createTestAnalyticsService(t)

		stats := []entity.DailyGlobalStat{{Date: "2026-10-01", TotalClicks: 10, TotalUsers: 2}}
		clickRepo.EXPECT().DailyGlobalStats(mock.Anything, mock.Anything, 30).Return(stats, nil)

		got, err := svc.GlobalStats(context.Background(), adminViewer())

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("creator", func(t *testing.T) {
		svc, _ := createTestAnalyticsService(t)

		_, err := svc.GlobalStats(context.Background(), creatorViewer(uuid.New()))

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
