package storage

import (
	"context"
	"log/slog"

	"blvgames/config"
	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBucketURL = "mem://"

// Params holds dependencies for ObjectStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage selects the storage backend from storage.provider.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	storage, err := newStorage(params.Ctx, params.Config.Storage, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

func newStorage(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (service.ObjectStorage, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Storage not configured, uploads are kept in memory")

		return NewBlobStorage(ctx, defaultBucketURL, "/uploads")
	}

	switch cfg.Provider {
	case constants.StorageProviderBlob:
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			bucketURL = defaultBucketURL
		}
		logger.Info("Using blob storage", slog.String("bucket_url", bucketURL))

		return NewBlobStorage(ctx, bucketURL, cfg.PublicBaseURL)

	case constants.StorageProviderMinio:
		logger.Info("Using MinIO storage", slog.String("endpoint", endpointOf(cfg.Minio)))

		return NewMinioStorage(ctx, cfg.Minio, cfg.PublicBaseURL)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

func endpointOf(cfg *config.MinioConfig) string {
	if cfg == nil {
		return ""
	}

	return cfg.Endpoint
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStorage),
)
