package impl

import (
	"context"
	"log/slog"

	deliverycontext "blvgames/internal/delivery/context"
	"blvgames/internal/domain/entity"
	"blvgames/internal/domain/repository"
	"blvgames/internal/domain/service"
	"blvgames/internal/infra/i18n"
	"blvgames/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	translator      *i18n.Translator
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Translator      *i18n.Translator
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		translator:      params.Translator,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyListingModerated pushes the decision to the owner's active devices and
// deactivates devices whose token the provider rejected.
func (s *notificationService) NotifyListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) (*usecase.NotifyResult, error) {
	result := &usecase.NotifyResult{}

	devices, err := s.deviceRepo.ListByUser(ctx, event.OwnerID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch owner devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("Owner has no active devices", slog.Any("ownerID", event.OwnerID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body := s.message(event)
	msg := service.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"event_id":    event.EventID,
			"game_id":     event.GameID.String(),
			"action":      string(event.Action),
			"from_status": event.FromStatus.String(),
			"to_status":   event.ToStatus.String(),
		},
	}

	var invalidTokens []string
	var sendErr error
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		report, err := s.notificationSvc.Multicast(ctx, batch, msg)
		if err != nil {
			// Keep going with the other batches, report the failure at the end.
			result.Failed += len(batch)
			sendErr = err

			continue
		}

		result.Sent += report.Sent
		result.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		disabled, err := s.deviceRepo.DeactivateTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Error("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
		result.Disabled = int(disabled)
	}

	s.log(ctx).Info("Moderation outcome pushed",
		slog.Any("gameID", event.GameID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("disabled", result.Disabled),
	)

	if sendErr != nil && result.Sent == 0 {
		return result, errors.Wrap(sendErr, "failed to send notifications")
	}

	return result, nil
}

// message renders the push text in the marketplace default language.
func (s *notificationService) message(event *entity.ListingModeratedEvent) (string, string) {
	tag := language.Spanish
	if s.translator != nil {
		tag = s.translator.Default()
	}

	code := "NOTIFY_LISTING_" + string(event.ToStatus)
	title := "blvgames.bo"
	body := event.GameName
	if s.translator != nil {
		title = s.translator.Message(tag, "NOTIFY_TITLE", title)
		body = s.translator.Message(tag, code, body, event.GameName)
	}

	return title, body
}
