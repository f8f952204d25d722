// Package context carries request-scoped values (request ID, logger) across the
// echo and context.Context boundaries.
package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header request IDs travel in.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey is the echo.Context store key set by the request ID middleware.
const echoRequestIDKey = "blvgames.request_id"

// GetRequestID returns the ID the middleware stored on c, or a fresh UUID when
// the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoRequestIDKey).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
