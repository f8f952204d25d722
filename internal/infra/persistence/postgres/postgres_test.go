package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := poolWaitReport(prev, prev)
	assert.False(t, ok)

	level, attrs, ok := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NotEmpty(t, attrs)

	level, _, ok = poolWaitReport(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
