//go:build integration
// +build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blvgames/internal/domain/entity"
	"blvgames/internal/infra/persistence/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migrations.Apply(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db
}

func TestIntegration_GameRoundTripWithImages(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := &entity.User{
		Email:        "estudio@andes.bo",
		Name:         "Ana",
		Role:         entity.RoleCreator,
		BusinessName: "Estudio Andes",
		Phone:        "+59170000000",
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, owner))
	require.NotZero(t, owner.ID)

	game := &entity.Game{
		UserID:      owner.ID,
		Name:        "Straße Ñandú",
		Description: "Carreras en el altiplano",
		Price:       15.5,
		Category:    "Acción",
		Status:      entity.GameStatusPending,
	}
	require.NoError(t, NewGameRepository(db).Create(ctx, game))
	require.NotZero(t, game.ID)

	images := entity.NewGameImages(game.ID, []string{"https://cdn/a.png", "", "https://cdn/b.png"})
	require.NoError(t, NewGameImageRepository(db).CreateBatch(ctx, images))

	got, err := NewGameRepository(db).FindByID(ctx, game.ID)
	require.NoError(t, err)

	assert.Equal(t, game.ID, got.ID)
	assert.Equal(t, owner.ID, got.UserID)
	assert.Equal(t, "Straße Ñandú", got.Name)
	assert.Equal(t, "Carreras en el altiplano", got.Description)
	assert.InDelta(t, 15.5, got.Price, 0.001)
	assert.Equal(t, "Acción", got.Category)
	assert.Equal(t, entity.GameStatusPending, got.Status)
	assert.False(t, got.Featured)

	require.Len(t, got.Images, 2)
	assert.Equal(t, "https://cdn/a.png", got.Images[0].ImageURL)
	assert.Equal(t, 0, got.Images[0].DisplayOrder)
	assert.Equal(t, "https://cdn/b.png", got.Images[1].ImageURL)
	assert.Equal(t, 1, got.Images[1].DisplayOrder)
	assert.Equal(t, "https://cdn/a.png", got.PrimaryImageURL("/placeholder.svg"))

	require.NotNil(t, got.Owner)
	assert.Equal(t, owner.ID, got.Owner.ID)
	assert.Equal(t, "Estudio Andes", got.Owner.BusinessName)
	assert.Equal(t, "+59170000000", got.Owner.Phone)

	var nameKey string
	require.NoError(t, db.Raw("SELECT name_key FROM games WHERE id = ?", game.ID).Scan(&nameKey).Error)
	assert.Equal(t, "strasse nandu", nameKey)
}

func TestIntegration_DailyClickRollupUsesLocalDays(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	laPaz, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	owner := &entity.User{Email: "clicks@andes.bo", Name: "Luis", Role: entity.RoleCreator}
	require.NoError(t, NewUserRepository(db).Create(ctx, owner))

	game := &entity.Game{
		UserID:      owner.ID,
		Name:        "Retro Racer",
		Description: "Carreras",
		Price:       10,
		Category:    "Acción",
		Status:      entity.GameStatusPending,
	}
	require.NoError(t, NewGameRepository(db).Create(ctx, game))

	clicks := NewClickRepository(db)
	// 23:30 local on March 1 is already March 2 in UTC.
	for _, c := range []struct {
		at     time.Time
		onGame bool
	}{
		{at: time.Date(2026, 3, 1, 10, 0, 0, 0, laPaz), onGame: true},
		{at: time.Date(2026, 3, 1, 14, 0, 0, 0, laPaz), onGame: true},
		{at: time.Date(2026, 3, 1, 23, 30, 0, 0, laPaz)},
		{at: time.Date(2026, 3, 2, 9, 0, 0, 0, laPaz), onGame: true},
	} {
		click := &entity.WhatsAppClick{UserID: owner.ID, ClickedAt: c.at}
		if c.onGame {
			click.GameID = &game.ID
		}
		require.NoError(t, clicks.Create(ctx, click))
	}

	stats, err := clicks.DailyStatsByUser(ctx, owner.ID, laPaz, 30)
	require.NoError(t, err)

	assert.Equal(t, []entity.DailyClickStat{
		{Date: "2026-03-02", TotalClicks: 1, GamesClicked: 1},
		{Date: "2026-03-01", TotalClicks: 3, GamesClicked: 1},
	}, stats)

	global, err := clicks.DailyGlobalStats(ctx, laPaz, 30)
	require.NoError(t, err)
	assert.Equal(t, []entity.DailyGlobalStat{
		{Date: "2026-03-02", TotalClicks: 1, TotalUsers: 1},
		{Date: "2026-03-01", TotalClicks: 3, TotalUsers: 1},
	}, global)
}
