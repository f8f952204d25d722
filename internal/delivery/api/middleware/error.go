package middleware

import (
	"log/slog"
	"net/http"

	"blvgames/internal/delivery/api/response"
	deliverycontext "blvgames/internal/delivery/context"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error of the HTTP pipeline in the request's language.
type ErrorMiddleware struct {
	logger     *slog.Logger
	translator *i18n.Translator
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, translator *i18n.Translator) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		translator: translator,
	}
}

type messageArgs interface {
	MessageArgs() []any
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
		}

		var args []any
		if withArgs, ok := appErr.(messageArgs); ok {
			args = withArgs.MessageArgs()
		}
		message := m.localize(c, appErr.ErrorCode(), appErr.Message(), args...)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.renderHTTPError(c, httpErr)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	_ = response.Error(c, internal.HTTPCode(), internal.ErrorCode(),
		m.localize(c, internal.ErrorCode(), internal.Message()), nil)
}

func (m *ErrorMiddleware) renderHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	var template *domainerrors.BaseError
	switch httpErr.Code {
	case http.StatusMethodNotAllowed:
		template = domainerrors.ErrMethodNotAllowed
		_ = response.MethodNotAllowed(c, m.localize(c, template.ErrorCode(), template.Message()))

		return
	case http.StatusNotFound:
		template = domainerrors.ErrNotFound
	case http.StatusUnauthorized:
		template = domainerrors.ErrUnauthorized
	case http.StatusForbidden:
		template = domainerrors.ErrForbidden
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		template = domainerrors.ErrValidationFailed
	case http.StatusRequestEntityTooLarge:
		template = domainerrors.NewBaseError(http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE", "La solicitud es demasiado grande", "")
	default:
		if httpErr.Code >= http.StatusInternalServerError {
			template = domainerrors.ErrInternalError
		}
	}

	if template == nil {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	_ = response.Error(c, httpErr.Code, template.ErrorCode(), m.localize(c, template.ErrorCode(), template.Message()), nil)
}

func (m *ErrorMiddleware) localize(c echo.Context, code, fallback string, args ...any) string {
	if m.translator == nil {
		return fallback
	}

	return m.translator.Message(m.translator.ResolveTag(c.Request()), code, fallback, args...)
}
