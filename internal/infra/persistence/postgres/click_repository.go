package postgres

import (
	"context"
	"time"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const dayLayout = "2006-01-02"

// clickRepository implements the repository.ClickRepository interface.
// Rollups are read from replicas when they are configured.
type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{
		db: db,
	}
}

// Create appends a click.
func (repo *clickRepository) Create(ctx context.Context, click *entity.WhatsAppClick) error {
	clickM := &model.WhatsAppClickModel{
		ID:        click.ID,
		UserID:    click.UserID,
		GameID:    click.GameID,
		ClickedAt: click.ClickedAt,
	}
	if clickM.ClickedAt.IsZero() {
		clickM.ClickedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(clickM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record click")
	}

	click.ID = clickM.ID
	click.ClickedAt = clickM.ClickedAt

	return nil
}

// DailyStatsByUser groups the studio's clicks by calendar day in loc.
func (repo *clickRepository) DailyStatsByUser(ctx context.Context, userID uuid.UUID, loc *time.Location, limit int) ([]entity.DailyClickStat, error) {
	var rows []model.DailyClickRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.WhatsAppClickModel{}).
		Select("(clicked_at AT TIME ZONE ?)::date AS day, COUNT(*) AS total_clicks, COUNT(DISTINCT game_id) AS games_clicked", loc.String()).
		Where("user_id = ?", userID).
		Group("day").
		Order("day DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate clicks by user")
	}

	stats := make([]entity.DailyClickStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.DailyClickStat{
			Date:         row.Day.Format(dayLayout),
			TotalClicks:  row.TotalClicks,
			GamesClicked: row.GamesClicked,
		})
	}

	return stats, nil
}

// DailyGlobalStats groups every click by calendar day in loc.
func (repo *clickRepository) DailyGlobalStats(ctx context.Context, loc *time.Location, limit int) ([]entity.DailyGlobalStat, error) {
	var rows []model.DailyGlobalRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.WhatsAppClickModel{}).
		Select("(clicked_at AT TIME ZONE ?)::date AS day, COUNT(*) AS total_clicks, COUNT(DISTINCT user_id) AS total_users", loc.String()).
		Group("day").
		Order("day DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate clicks")
	}

	stats := make([]entity.DailyGlobalStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.DailyGlobalStat{
			Date:        row.Day.Format(dayLayout),
			TotalClicks: row.TotalClicks,
			TotalUsers:  row.TotalUsers,
		})
	}

	return stats, nil
}
