package postgres

import (
	"context"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"
	"blvgames/internal/infra/textfold"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// List returns users matching the filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Query != "" {
		query = query.Where("business_name_key LIKE ?", textfold.LikePattern(filter.Query))
	}

	if err := query.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user. A taken email is reported as repository.ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing or invalid user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile applies the supplied profile fields in a single UPDATE statement.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch entity.ProfilePatch) error {
	columns := patch.Columns()
	if len(columns) == 0 {
		return errors.WithStack(domainerrors.ErrNoFieldsToUpdate)
	}
	if patch.BusinessName != nil {
		columns["business_name_key"] = textfold.Fold(*patch.BusinessName)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AcquireSessionMutex locks the user row until the surrounding transaction ends.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user row")
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Role:         entity.Role(data.Role),
		BusinessName: data.BusinessName,
		Logo:         data.Logo,
		CoverPhoto:   data.CoverPhoto,
		Description:  data.Description,
		Phone:        data.Phone,
		Address:      data.Address,
		Facebook:     data.Facebook,
		Instagram:    data.Instagram,
		Twitter:      data.Twitter,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		Role:            data.Role.String(),
		BusinessName:    data.BusinessName,
		BusinessNameKey: textfold.Fold(data.BusinessName),
		Logo:            data.Logo,
		CoverPhoto:      data.CoverPhoto,
		Description:     data.Description,
		Phone:           data.Phone,
		Address:         data.Address,
		Facebook:        data.Facebook,
		Instagram:       data.Instagram,
		Twitter:         data.Twitter,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOwnerSummary(data *model.UserModel) *entity.OwnerSummary {
	if data == nil {
		return nil
	}

	return &entity.OwnerSummary{
		ID:           data.ID,
		Name:         data.Name,
		BusinessName: data.BusinessName,
		Logo:         data.Logo,
		Phone:        data.Phone,
		Address:      data.Address,
		Facebook:     data.Facebook,
		Instagram:    data.Instagram,
		Twitter:      data.Twitter,
	}
}
