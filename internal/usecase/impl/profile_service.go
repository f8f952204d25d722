package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/domain/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		qrcode:   qrcode,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the public studio profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListProfiles lists studios. An empty role defaults to creator.
func (srv *profileService) ListProfiles(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	if filter.Role == "" {
		filter.Role = entity.RoleCreator
	}
	if !filter.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role")
	}
	filter.Query = strings.TrimSpace(filter.Query)

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateProfile applies the allow-listed fields in a single statement.
func (srv *profileService) UpdateProfile(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID, patch entity.ProfilePatch) error {
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}
	if !canManage(viewer, userID) {
		return errors.Wrap(domainerrors.ErrForbidden, "profile belongs to another user")
	}
	if patch.IsEmpty() {
		return domainerrors.ErrNoFieldsToUpdate
	}
	if patch.BusinessName != nil && strings.TrimSpace(*patch.BusinessName) == "" {
		return domainerrors.NewMissingFieldError("business_name")
	}

	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID), slog.Any("actorID", viewer.UserID))

	if err := srv.userRepo.UpdateProfile(ctx, userID, patch); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile update")
		}

		return errors.Wrap(err, "failed to update user profile")
	}

	return nil
}

// WhatsAppQR renders the studio's contact link.
func (srv *profileService) WhatsAppQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Phone) == "" {
		return nil, domainerrors.ErrPhoneMissing
	}

	png, err := srv.qrcode.GenerateWhatsAppQR(user.Phone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhone) {
			return nil, domainerrors.ErrPhoneMissing.WithDetails("phone has no digits")
		}

		return nil, errors.Wrap(err, "failed to generate whatsapp qr")
	}

	return png, nil
}
