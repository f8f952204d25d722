package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDerivedErrors(t *testing.T) {
	derived := ErrValidationFailed.WithDetails("price must be >= 0")

	assert.True(t, stderrors.Is(derived, ErrValidationFailed))
	assert.True(t, stderrors.Is(pkgerrors.Wrap(derived, "create game"), ErrValidationFailed))
	assert.False(t, stderrors.Is(derived, ErrGameNotFound))
	assert.Equal(t, "price must be >= 0", derived.Details())
}

func TestNewMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("name")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "MISSING_FIELD", err.ErrorCode())
	assert.Equal(t, "El campo 'name' es requerido", err.Message())
	assert.Equal(t, "name", err.Details())
	assert.Equal(t, []any{"name"}, err.MessageArgs())
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDatabaseExecuteError_HidesDriverText(t *testing.T) {
	driverErr := stderrors.New(`pq: relation "games" does not exist`)
	err := NewDatabaseExecuteError(driverErr, "list games")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.NotContains(t, err.Message(), "relation")
	assert.ErrorIs(t, err, driverErr)
}
