package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blvgames/config"
	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate the delivery should be retried
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether a Process error should be redelivered.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns listing.moderated deliveries into owner notifications.
// It serves Pub/Sub push requests and is reused by the RabbitMQ consumer.
type PushHandler struct {
	audience string
	validate tokenValidator
	notifyUC usecase.NotificationUsecase
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	NotifyUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are only
// verified when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config != nil && params.Config.Worker != nil {
		audience = strings.TrimSpace(params.Config.Worker.PushAudience)
	}

	return &PushHandler{
		audience: audience,
		validate: idtoken.Validate,
		notifyUC: params.NotifyUC,
		logger:   params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages are
// answered with 400, failed deliveries with 503 so Pub/Sub retries them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.audience != "" {
		if err := h.verifyPubSubToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.Process(ctx, data, pushMsg.Message.Attributes); err != nil {
		if IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusBadRequest)
	}

	return c.NoContent(http.StatusOK)
}

// Process decodes one event payload and notifies the listing owner. Events of
// other types are acknowledged and skipped.
func (h *PushHandler) Process(ctx context.Context, data []byte, attributes map[string]string) error {
	if eventType := attributes[constants.AttributeEventType]; eventType != "" && eventType != constants.EventTypeListingModerated {
		h.logger.Debug("[Worker] Skipping unrelated event", slog.String("event_type", eventType))

		return nil
	}

	var event entity.ListingModeratedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse listing event", slog.Any("error", err))

		return errors.Wrap(err, "decode listing event")
	}
	if event.OwnerID == uuid.Nil || event.GameID == uuid.Nil {
		h.logger.Error("[Worker] Listing event without owner or game", slog.String("event_id", event.EventID))

		return errors.New("listing event is missing owner_id or game_id")
	}

	requestID := h.extractRequestID(ctx, attributes, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing listing event",
		slog.String("event_id", event.EventID),
		slog.String("game_id", event.GameID.String()),
		slog.String("to_status", event.ToStatus.String()),
	)

	result, err := h.notifyUC.NotifyListingModerated(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to notify owner",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return newRetryableError(err)
	}

	reqLogger.Info("[Worker] Listing event processed",
		slog.String("event_id", event.EventID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("disabled", result.Disabled),
	)

	return nil
}

// extractRequestID prefers the message attribute, then the event, then the transport.
func (h *PushHandler) extractRequestID(ctx context.Context, attributes map[string]string, event *entity.ListingModeratedEvent) string {
	if id := attributes[constants.AttributeRequestID]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

func (h *PushHandler) verifyPubSubToken(ctx context.Context, authHeader string) error {
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
