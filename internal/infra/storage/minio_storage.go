package storage

import (
	"context"
	"io"

	"blvgames/config"
	"blvgames/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStorage connects to MinIO and creates the bucket when missing.
func NewMinioStorage(ctx context.Context, cfg *config.MinioConfig, publicBaseURL string) (service.ObjectStorage, error) {
	if cfg == nil || cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "check bucket %s", cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "create bucket %s", cfg.Bucket)
		}
	}

	return &minioStorage{client: client, bucket: cfg.Bucket, publicBaseURL: publicBaseURL}, nil
}

func (s *minioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) (*service.StoredObject, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "put object")
	}

	return &service.StoredObject{
		Key:         key,
		URL:         publicURL(s.publicBaseURL, key),
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

func (s *minioStorage) Get(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "get object")
	}

	// GetObject is lazy; Stat surfaces a missing key.
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrap(err, "stat object")
	}

	return obj, &service.StoredObject{
		Key:         key,
		URL:         publicURL(s.publicBaseURL, key),
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}, nil
}

func (s *minioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "remove object")
	}

	return nil
}

func (s *minioStorage) Close() error {
	return nil
}
