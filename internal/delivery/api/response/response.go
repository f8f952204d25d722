// Package response renders the JSON bodies of the API.
package response

import (
	"net/http"

	deliverycontext "blvgames/internal/delivery/context"
	domainerrors "blvgames/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Body is a JSON object response. Keys are merged with the envelope fields.
type Body map[string]any

// Success writes body with success:true and the request metadata.
func Success(c echo.Context, statusCode int, body Body) error {
	if body == nil {
		body = Body{}
	}
	body["success"] = true

	return JSON(c, statusCode, body)
}

// JSON writes body with the request metadata only. Reads use it for {game}, {users} and similar bodies.
func JSON(c echo.Context, statusCode int, body Body) error {
	if body == nil {
		body = Body{}
	}
	body["meta"] = meta(c)

	return c.JSON(statusCode, body)
}

// Error writes the error body. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error:   message,
		Code:    errorCode,
		Details: details,
		Meta:    meta(c),
	})
}

// MethodNotAllowed writes the bare {error} body used for unsupported verbs.
func MethodNotAllowed(c echo.Context, message string) error {
	return c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": message})
}

// PNG writes an image body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
