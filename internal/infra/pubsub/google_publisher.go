package pubsub

import (
	"context"
	"log/slog"

	"blvgames/config"
	"blvgames/internal/domain/entity"
	"blvgames/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends events to a Cloud Pub/Sub topic. Messages are ordered
// per game so a reopen never overtakes the rejection it follows.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher fails fast when the topic does not exist.
func NewGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.ProjectID == "" || cfg.TopicID == "" {
		return nil, errors.New("google provider needs projectId and topicId")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing moderation events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishListingModerated blocks until the server acknowledges the message.
func (p *googlePublisher) PublishListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) error {
	data, attributes, err := encodeListingModerated(event)
	if err != nil {
		return err
	}

	orderingKey := event.GameID.String()
	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(orderingKey)

		return errors.Wrap(err, "publish listing moderated")
	}

	p.logger.Debug("Moderation event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
