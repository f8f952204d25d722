// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken by another account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List returns users matching the filter, newest first.
	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile applies the supplied profile fields in a single statement.
	UpdateProfile(ctx context.Context, id uuid.UUID, patch entity.ProfilePatch) error

	// AcquireSessionMutex locks the user row so concurrent logins serialize the session count.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
