package impl

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/service"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadBytes = 5 << 20
	sniffLen              = 512
	imageKeyPrefix        = "games/"
)

// imageExtensions lists the accepted sniffed content types.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage  service.ObjectStorage
	maxBytes int64
	now      func() time.Time
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService parses the configured size limit, e.g. "5MB".
func NewUploadService(params UploadServiceParams) (usecase.UploadUsecase, error) {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize != "" {
		parsed, err := bytes.Parse(params.Config.Storage.MaxUploadSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid storage.maxUploadSize %q", params.Config.Storage.MaxUploadSize)
		}
		maxBytes = parsed
	}

	return &uploadService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   params.Logger,
	}, nil
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage sniffs the content type from the file header, not the client's claim.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*service.StoredObject, error) {
	if input.Body == nil || input.Size <= 0 {
		return nil, domainerrors.NewMissingFieldError("file")
	}
	if input.Size > srv.maxBytes {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails(bytes.Format(srv.maxBytes))
	}

	reader := bufio.NewReaderSize(input.Body, sniffLen)
	head, err := reader.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, errors.Wrap(err, "failed to read upload header")
	}
	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails(contentType)
	}

	key := srv.imageKey(input.OwnerID, ext)
	metadata := map[string]string{
		"owner_id":          input.OwnerID.String(),
		"original_filename": path.Base(input.Filename),
	}

	obj, err := srv.storage.Put(ctx, key, io.LimitReader(reader, input.Size), input.Size, contentType, metadata)
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	srv.log(ctx).Info("Image uploaded", slog.String("key", key), slog.Int64("size", obj.Size))

	return obj, nil
}

// OpenImage streams back an uploaded image.
func (srv *uploadService) OpenImage(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error) {
	key = strings.TrimPrefix(key, "/")
	if !validImageKey(key) {
		return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "invalid image key")
	}

	body, obj, err := srv.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "image lookup")
		}

		return nil, nil, errors.Wrap(err, "failed to open image")
	}

	return body, obj, nil
}

// imageKey lays out games/<owner>/<yyyy>/<mm>/<uuid><ext>.
func (srv *uploadService) imageKey(ownerID uuid.UUID, ext string) string {
	now := srv.now().UTC()

	return path.Join(imageKeyPrefix+ownerID.String(), now.Format("2006"), now.Format("01"), uuid.NewString()+ext)
}

func validImageKey(key string) bool {
	return strings.HasPrefix(key, imageKeyPrefix) && path.Clean(key) == key && !strings.Contains(key, "..")
}
