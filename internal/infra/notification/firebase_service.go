package notification

import (
	"context"
	"log/slog"

	"blvgames/config"
	"blvgames/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client used here.
type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the FCM client. Without a credentials path it falls back to
// application default credentials.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	var opts []option.ClientOption
	if cfg != nil {
		if cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func notificationOf(msg service.PushMessage) *messaging.Notification {
	return &messaging.Notification{Title: msg.Title, Body: msg.Body}
}

func (s *firebaseService) Send(ctx context.Context, token string, msg service.PushMessage) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: notificationOf(msg),
		Data:         msg.Data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// Multicast splits tokens into FCM-sized requests. Invalid and unregistered
// tokens are collected for deactivation.
func (s *firebaseService) Multicast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{InvalidTokens: make([]string, 0)}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notificationOf(msg),
			Data:         msg.Data,
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Sent += resp.SuccessCount
		report.Failed += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Error != nil && (messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error)) {
				report.InvalidTokens = append(report.InvalidTokens, chunk[i])
			}
		}
	}

	return report, nil
}

// logOnlyService stands in when Firebase is not configured so the notifier still runs locally.
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService returns a NotificationService that only logs.
func NewLogOnlyService(logger *slog.Logger) service.NotificationService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) Send(_ context.Context, token string, msg service.PushMessage) error {
	s.logger.Info("[LogOnlyPush] notification", slog.String("title", msg.Title), slog.Int("token_len", len(token)))

	return nil
}

func (s *logOnlyService) Multicast(_ context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	s.logger.Info("[LogOnlyPush] multicast", slog.String("title", msg.Title), slog.Int("tokens", len(tokens)))

	return &service.PushReport{Sent: len(tokens)}, nil
}
