package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"blvgames/config"
	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/entity"
	"blvgames/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKindTopic = "topic"

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher implements EventPublisher on a durable topic exchange.
type rabbitMQPublisher struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	ch         amqpChannel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the exchange.
func NewRabbitMQPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.URL == "" || cfg.Exchange == "" {
		return nil, errors.New("rabbitmq url and exchange are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "declare exchange")
	}

	routingKey := cfg.RoutingKey
	if routingKey == "" {
		routingKey = constants.EventTypeListingModerated
	}

	logger.Info("RabbitMQ publisher initialized",
		slog.String("exchange", cfg.Exchange),
		slog.String("routing_key", routingKey),
	)

	return &rabbitMQPublisher{
		conn:       conn,
		ch:         ch,
		exchange:   cfg.Exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

// PublishListingModerated publishes a persistent JSON message.
func (p *rabbitMQPublisher) PublishListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) error {
	data, attributes, err := encodeListingModerated(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attributes {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Type:          constants.EventTypeListingModerated,
		Headers:       headers,
		Body:          data,
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "publish listing moderated")
	}

	p.logger.Info("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("routing_key", p.routingKey),
	)

	return nil
}

// Close closes the channel and connection.
func (p *rabbitMQPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
