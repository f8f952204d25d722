package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond}}
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "req-9"))
	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return `SELECT * FROM "games"`, 3 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "gorm slow query")
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, assert.AnError)
	assert.Contains(t, buf.String(), "gorm query failed")
}
