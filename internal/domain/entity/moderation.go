package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ModerationAction is an admin decision on a listing.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationReopen  ModerationAction = "reopen"
)

// IsValid checks if the ModerationAction is a valid value.
func (a ModerationAction) IsValid() bool {
	switch a {
	case ModerationApprove, ModerationReject, ModerationReopen:
		return true
	default:
		return false
	}
}

var (
	// ErrTransitionNotAllowed is returned for any status change outside the allowed table.
	ErrTransitionNotAllowed = errors.New("moderation transition not allowed")
	// ErrModeratorRequired is returned when a non-admin attempts a moderation action.
	ErrModeratorRequired = errors.New("moderation requires the admin role")
)

// ModerationPolicy enables the optional transitions. The zero value allows only
// pending -> approved and pending -> rejected.
type ModerationPolicy struct {
	AllowReversal bool // approved <-> rejected
	AllowReopen   bool // approved|rejected -> pending
}

// Transition validates an admin decision and returns the resulting status.
func Transition(current GameStatus, action ModerationAction, actor Role, policy ModerationPolicy) (GameStatus, error) {
	if actor != RoleAdmin {
		return current, ErrModeratorRequired
	}

	switch current {
	case GameStatusPending:
		switch action {
		case ModerationApprove:
			return GameStatusApproved, nil
		case ModerationReject:
			return GameStatusRejected, nil
		}
	case GameStatusApproved:
		switch action {
		case ModerationReject:
			if policy.AllowReversal {
				return GameStatusRejected, nil
			}
		case ModerationReopen:
			if policy.AllowReopen {
				return GameStatusPending, nil
			}
		}
	case GameStatusRejected:
		switch action {
		case ModerationApprove:
			if policy.AllowReversal {
				return GameStatusApproved, nil
			}
		case ModerationReopen:
			if policy.AllowReopen {
				return GameStatusPending, nil
			}
		}
	}

	return current, errors.Wrapf(ErrTransitionNotAllowed, "%s from %s", action, current)
}

// ModerationEvent is one entry of a listing's audit trail.
type ModerationEvent struct {
	ID         uuid.UUID
	GameID     uuid.UUID
	ActorID    uuid.UUID
	Action     ModerationAction
	FromStatus GameStatus
	ToStatus   GameStatus
	Reason     string
	CreatedAt  time.Time
}

// ListingModeratedEvent is published after a moderation decision is committed.
type ListingModeratedEvent struct {
	EventID    string           `json:"event_id"`
	GameID     uuid.UUID        `json:"game_id"`
	GameName   string           `json:"game_name"`
	OwnerID    uuid.UUID        `json:"owner_id"`
	ActorID    uuid.UUID        `json:"actor_id"`
	Action     ModerationAction `json:"action"`
	FromStatus GameStatus       `json:"from_status"`
	ToStatus   GameStatus       `json:"to_status"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
	RequestID  string           `json:"request_id,omitempty"`
}
