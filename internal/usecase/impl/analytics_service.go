package impl

import (
	"context"
	"log/slog"
	"time"

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

const defaultStatsDays = 30

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	clickRepo repository.ClickRepository
	location  *time.Location
	maxDays   int
	now       func() time.Time
	logger    *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	ClickRepo repository.ClickRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAnalyticsService resolves the reporting time zone once. An unknown zone is an error.
func NewAnalyticsService(params AnalyticsServiceParams) (usecase.AnalyticsUsecase, error) {
	location := time.UTC
	maxDays := defaultStatsDays
	if params.Config != nil && params.Config.Analytics != nil {
		if tz := params.Config.Analytics.Timezone; tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid analytics timezone %q", tz)
			}
			location = loc
		}
		if params.Config.Analytics.MaxDays > 0 {
			maxDays = params.Config.Analytics.MaxDays
		}
	}

	return &analyticsService{
		clickRepo: params.ClickRepo,
		location:  location,
		maxDays:   maxDays,
		now:       time.Now,
		logger:    params.Logger,
	}, nil
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackClick records one WhatsApp contact. Unknown studios or listings are rejected.
func (srv *analyticsService) TrackClick(ctx context.Context, input *usecase.TrackClickInput) error {
	if input.UserID == uuid.Nil {
		return domainerrors.NewMissingFieldError("user_id")
	}

	click := &entity.WhatsAppClick{
		UserID:    input.UserID,
		GameID:    input.GameID,
		ClickedAt: srv.now(),
	}
	if err := srv.clickRepo.Create(ctx, click); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return errors.Wrap(domainerrors.ErrInvalidReference, "click target")
		}

		return errors.Wrap(err, "failed to record click")
	}

	srv.log(ctx).Debug("Click tracked", slog.Any("userID", input.UserID), slog.Any("gameID", input.GameID))

	return nil
}

func (srv *analyticsService) UserStats(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID) ([]entity.DailyClickStat, error) {
	if viewer == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if !canManage(viewer, userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "stats of another studio")
	}

	stats, err := srv.clickRepo.DailyStatsByUser(ctx, userID, srv.location, srv.maxDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user stats")
	}

	return stats, nil
}

func (srv *analyticsService) GlobalStats(ctx context.Context, viewer *entity.Viewer) ([]entity.DailyGlobalStat, error) {
	if viewer == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if !viewer.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "global stats require the admin role")
	}

	stats, err := srv.clickRepo.DailyGlobalStats(ctx, srv.location, srv.maxDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load global stats")
	}

	return stats, nil
}
