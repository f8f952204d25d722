package handler

import (
	"net/http"
	"strconv"

	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadFormField = "file"

// UploadHandler accepts listing images and serves them back.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(uploadUC usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// UploadImage serves POST /api/uploads/images with a multipart "file" part.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return domainerrors.NewMissingFieldError(uploadFormField)
		}

		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(uploadFormField), err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	obj, err := h.uploadUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		OwnerID:  viewer.UserID,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, response.Body{
		"url":          obj.URL,
		"key":          obj.Key,
		"content_type": obj.ContentType,
		"size":         obj.Size,
	})
}

// ServeImage streams a stored image from GET /uploads/*.
func (h *UploadHandler) ServeImage(c echo.Context) error {
	body, obj, err := h.uploadUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return err
	}
	defer body.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=86400")
	if obj.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	return c.Stream(http.StatusOK, obj.ContentType, body)
}
