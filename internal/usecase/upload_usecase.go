package usecase

import (
	"context"
	"io"

	"blvgames/internal/domain/service"

	"github.com/google/uuid"
)

// UploadImageInput is one image file sent by a creator.
type UploadImageInput struct {
	OwnerID  uuid.UUID
	Filename string
	Size     int64
	Body     io.Reader
}

// UploadUsecase stores listing images and serves them back.
type UploadUsecase interface {
	// UploadImage validates and stores the image, returning its public URL.
	UploadImage(ctx context.Context, input *UploadImageInput) (*service.StoredObject, error)

	// OpenImage opens a stored image. The caller closes the reader.
	OpenImage(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error)
}
