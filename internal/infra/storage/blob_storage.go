// Package storage implements service.ObjectStorage on gocloud.dev buckets and MinIO.
package storage

import (
	"context"
	"io"
	"strings"

	"blvgames/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens a bucket from a URL such as file:///var/uploads, s3://bucket or gs://bucket.
func NewBlobStorage(ctx context.Context, bucketURL, publicBaseURL string) (service.ObjectStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket, publicBaseURL: publicBaseURL}, nil
}

func (s *blobStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) (*service.StoredObject, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open blob writer")
	}

	written, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "commit blob")
	}
	if size > 0 && written != size {
		return nil, errors.Errorf("short write: %d of %d bytes", written, size)
	}

	return &service.StoredObject{
		Key:         key,
		URL:         publicURL(s.publicBaseURL, key),
		ContentType: contentType,
		Size:        written,
	}, nil
}

func (s *blobStorage) Get(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrap(err, "open blob reader")
	}

	return r, &service.StoredObject{
		Key:         key,
		URL:         publicURL(s.publicBaseURL, key),
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete blob")
	}

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func publicURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(key, "/")
}
