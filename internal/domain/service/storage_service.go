package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by ObjectStorage.Get for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject describes an uploaded file.
type StoredObject struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// ObjectStorage stores uploaded images and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) (*StoredObject, error)

	// Get opens the object for reading. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, *StoredObject, error)

	Delete(ctx context.Context, key string) error

	Close() error
}
