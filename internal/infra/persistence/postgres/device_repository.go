package postgres

import (
	"context"
	"time"

	"blvgames/internal/domain/entity"
	"blvgames/internal/domain/repository"
	"blvgames/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	row := &model.UserDeviceModel{
		UserID:   device.UserID,
		DeviceID: device.DeviceID,
		FCMToken: device.FCMToken,
		Platform: string(device.Platform),
		IsActive: true,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.WithStack(repository.ErrDuplicateDevice)
		case isForeignKeyConstraintViolation(err):
			return errors.Wrap(repository.ErrInvalidReference, "device owner")
		}

		return errors.Wrap(err, "upsert device")
	}

	device.ID = row.ID
	device.IsActive = true
	device.CreatedAt = row.CreatedAt
	device.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *deviceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "get device")
	}

	return deviceFromRow(&row), nil
}

func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []model.UserDeviceModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i := range rows {
		devices[i] = deviceFromRow(&rows[i])
	}

	return devices, nil
}

func (repo *deviceRepository) SetToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	res := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true, "updated_at": time.Now()})
	if res.Error != nil {
		if isUniqueConstraintViolation(res.Error) {
			return errors.WithStack(repository.ErrDuplicateDevice)
		}

		return errors.Wrap(res.Error, "set device token")
	}
	if res.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if res.Error != nil {
		return errors.Wrap(res.Error, "deactivate device")
	}
	if res.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	res := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", fcmTokens, true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deactivate device tokens")
	}

	return res.RowsAffected, nil
}

func deviceFromRow(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		FCMToken:  row.FCMToken,
		DeviceID:  row.DeviceID,
		Platform:  entity.DevicePlatform(row.Platform),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
