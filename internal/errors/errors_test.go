package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType_FindsWrappedError(t *testing.T) {
	wrapped := Wrap(&codedError{code: "GAME_NOT_FOUND"}, "load listing")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "GAME_NOT_FOUND", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, Wrapf(nil, "noop %d", 1))
}

func TestWrap_KeepsStack(t *testing.T) {
	base := New("boom")
	err := Wrapf(base, "step %d", 2)

	assert.True(t, Is(err, base))
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
	assert.Equal(t, "step 2: boom", err.Error())
}
