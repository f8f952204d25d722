package usecase

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for studio profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListProfiles returns users of the filter role, creators by default, newest first.
	ListProfiles(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)

	// UpdateProfile applies the patch. Users update their own profile; admins may update any.
	UpdateProfile(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID, patch entity.ProfilePatch) error

	// WhatsAppQR renders the studio's WhatsApp contact link as a PNG.
	WhatsAppQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
