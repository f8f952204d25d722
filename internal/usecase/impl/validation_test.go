package impl

import (
	"testing"

	domainerrors "blvgames/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMatcher_Resolve(t *testing.T) {
	m := newCategoryMatcher([]string{"Acción", "Aventura"})

	got, err := m.resolve("  accion ")
	require.NoError(t, err)
	assert.Equal(t, "Acción", got)

	got, err = m.resolve("AVENTURA")
	require.NoError(t, err)
	assert.Equal(t, "Aventura", got)

	_, err = m.resolve("Deportes")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestCategoryMatcher_EmptyListAcceptsAnything(t *testing.T) {
	got, err := newCategoryMatcher(nil).resolve(" Indie ")

	require.NoError(t, err)
	assert.Equal(t, "Indie", got)
}

func TestRequireFields_ReportsFirstBlank(t *testing.T) {
	err := requireFields(field{"name", "ok"}, field{"email", " "}, field{"password", ""})

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email", appErr.Details())
	assert.NoError(t, requireFields(field{"name", "ok"}))
}

func TestCanManage(t *testing.T) {
	owner := uuid.New()

	assert.True(t, canManage(creatorViewer(owner), owner))
	assert.True(t, canManage(adminViewer(), owner))
	assert.False(t, canManage(creatorViewer(uuid.New()), owner))
	assert.False(t, canManage(nil, owner))
}
