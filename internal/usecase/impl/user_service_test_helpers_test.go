package impl

import (
	"context"
	"io"
	"log/slog"

	"blvgames/config"
	"blvgames/internal/domain/entity"
	"blvgames/internal/domain/repository"
	mockRepo "blvgames/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Moderation: &config.ModerationConfig{},
		Games: &config.GamesConfig{
			Categories: []string{"Acción", "Aventura", "Puzzle"},
			MaxImages:  3,
		},
		Analytics: &config.AnalyticsConfig{
			Timezone: "America/La_Paz",
			MaxDays:  30,
		},
	}
}

// expectTx makes every Execute call run fn against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func creatorViewer(id uuid.UUID) *entity.Viewer {
	return &entity.Viewer{UserID: id, Roles: entity.Roles{entity.RoleCreator}}
}

func adminViewer() *entity.Viewer {
	return &entity.Viewer{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

func ptr[T any](v T) *T {
	return &v
}
