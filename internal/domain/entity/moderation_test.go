package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	strict := ModerationPolicy{}
	lenient := ModerationPolicy{AllowReversal: true, AllowReopen: true}

	tests := []struct {
		name    string
		current GameStatus
		action  ModerationAction
		policy  ModerationPolicy
		want    GameStatus
		wantErr error
	}{
		{"approve pending", GameStatusPending, ModerationApprove, strict, GameStatusApproved, nil},
		{"reject pending", GameStatusPending, ModerationReject, strict, GameStatusRejected, nil},
		{"reopen pending", GameStatusPending, ModerationReopen, lenient, GameStatusPending, ErrTransitionNotAllowed},
		{"approve approved", GameStatusApproved, ModerationApprove, lenient, GameStatusApproved, ErrTransitionNotAllowed},
		{"reject approved without reversal", GameStatusApproved, ModerationReject, strict, GameStatusApproved, ErrTransitionNotAllowed},
		{"reject approved with reversal", GameStatusApproved, ModerationReject, lenient, GameStatusRejected, nil},
		{"approve rejected without reversal", GameStatusRejected, ModerationApprove, strict, GameStatusRejected, ErrTransitionNotAllowed},
		{"approve rejected with reversal", GameStatusRejected, ModerationApprove, lenient, GameStatusApproved, nil},
		{"reopen rejected without policy", GameStatusRejected, ModerationReopen, strict, GameStatusRejected, ErrTransitionNotAllowed},
		{"reopen rejected", GameStatusRejected, ModerationReopen, lenient, GameStatusPending, nil},
		{"reopen approved", GameStatusApproved, ModerationReopen, ModerationPolicy{AllowReopen: true}, GameStatusPending, nil},
		{"unknown action", GameStatusPending, ModerationAction("archive"), lenient, GameStatusPending, ErrTransitionNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.action, RoleAdmin, tt.policy)

			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransition_RequiresAdmin(t *testing.T) {
	got, err := Transition(GameStatusPending, ModerationApprove, RoleCreator, ModerationPolicy{})

	assert.Equal(t, GameStatusPending, got)
	assert.True(t, errors.Is(err, ErrModeratorRequired))
}

func TestModerationAction_IsValid(t *testing.T) {
	assert.True(t, ModerationApprove.IsValid())
	assert.True(t, ModerationReject.IsValid())
	assert.True(t, ModerationReopen.IsValid())
	assert.False(t, ModerationAction("").IsValid())
	assert.False(t, ModerationAction("delete").IsValid())
}
