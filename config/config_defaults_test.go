package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Moderation)
	assert.False(t, cfg.Moderation.AllowReversal)
	assert.False(t, cfg.Moderation.AllowReopen)
	assert.Equal(t, defaultLanguage, cfg.Env.Language)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPlaceholderImage, cfg.Games.PlaceholderImage)
	assert.Equal(t, defaultTimezone, cfg.Analytics.Timezone)
	assert.Equal(t, defaultAnalyticsDays, cfg.Analytics.MaxDays)
	assert.Nil(t, cfg.Storage)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Games:     &GamesConfig{PlaceholderImage: "/custom.png", MaxImages: 4},
		Analytics: &AnalyticsConfig{Timezone: "UTC", MaxDays: 7},
		Storage:   &StorageConfig{},
	}
	cfg.Env.Language = "en"

	applyDefaults(cfg)

	assert.Equal(t, "en", cfg.Env.Language)
	assert.Equal(t, "/custom.png", cfg.Games.PlaceholderImage)
	assert.Equal(t, 4, cfg.Games.MaxImages)
	assert.Equal(t, "UTC", cfg.Analytics.Timezone)
	assert.Equal(t, 7, cfg.Analytics.MaxDays)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
}
