package worker

import (
	"context"
	"log/slog"
	"sync"

	"blvgames/config"
	"blvgames/internal/delivery"
	"blvgames/internal/delivery/worker/handler"
	"blvgames/internal/domain/constants"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerTag      = "blvgames-notifier"
	consumerPrefetch = 10
)

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// amqpChannel is the part of *amqp.Channel the consumer uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// amqpConnection is the part of *amqp.Connection the consumer uses.
type amqpConnection interface {
	Channel() (amqpChannel, error)
	IsClosed() bool
	Close() error
}

type dialedConnection struct {
	*amqp.Connection
}

func (c dialedConnection) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialRabbitMQ(url string) (amqpConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	return dialedConnection{Connection: conn}, nil
}

// rabbitConsumer feeds listing events from a durable queue into the push handler.
type rabbitConsumer struct {
	cfg     *config.RabbitMQConfig
	handler *handler.PushHandler
	logger  *slog.Logger
	dial    func(url string) (amqpConnection, error)

	mu   sync.Mutex
	conn amqpConnection
	done chan struct{}
	once sync.Once
}

// disabledConsumer stands in when events do not travel over RabbitMQ.
type disabledConsumer struct{}

func (disabledConsumer) Serve(context.Context) error { return nil }

// NewConsumer creates the queue consumer. It is a no-op unless the pubsub
// provider is rabbitmq.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	pubsubCfg := params.Cfg.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider != constants.PubSubProviderRabbitMQ {
		return disabledConsumer{}, nil
	}
	if pubsubCfg.RabbitMQ == nil || pubsubCfg.RabbitMQ.URL == "" || pubsubCfg.RabbitMQ.Queue == "" {
		return nil, errors.New("rabbitmq url and queue are required for the notifier")
	}

	c := &rabbitConsumer{
		cfg:     pubsubCfg.RabbitMQ,
		handler: params.PushHandler,
		logger:  params.Logger,
		dial:    dialRabbitMQ,
		done:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve declares the topology and consumes until stopped. The channel and
// connection are closed on every return path.
func (c *rabbitConsumer) Serve(ctx context.Context) error {
	conn, err := c.dial(c.cfg.URL)
	if err != nil {
		return errors.Wrap(err, "dial rabbitmq")
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer c.closeConn()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	msgs, err := c.declare(ch)
	if err != nil {
		return err
	}

	c.logger.Info("Consuming listing events",
		slog.String("queue", c.cfg.Queue),
		slog.String("exchange", c.cfg.Exchange),
	)

	for {
		select {
		case <-c.done:
			return nil
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				select {
				case <-c.done:
					return nil
				default:
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *rabbitConsumer) declare(ch amqpChannel) (<-chan amqp.Delivery, error) {
	routingKey := c.cfg.RoutingKey
	if routingKey == "" {
		routingKey = constants.EventTypeListingModerated
	}

	if c.cfg.Exchange != "" {
		if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
			return nil, errors.Wrap(err, "declare exchange")
		}
	}
	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declare queue")
	}
	if c.cfg.Exchange != "" {
		if err := ch.QueueBind(c.cfg.Queue, routingKey, c.cfg.Exchange, false, nil); err != nil {
			return nil, errors.Wrap(err, "bind queue")
		}
	}
	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "set qos")
	}

	msgs, err := ch.Consume(c.cfg.Queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrap(err, "start consuming")
	}

	return msgs, nil
}

// handleDelivery acks processed messages, requeues retryable failures and
// drops malformed ones.
func (c *rabbitConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	err := c.handler.Process(ctx, d.Body, deliveryAttributes(d))

	var ackErr error
	switch {
	case err == nil:
		ackErr = d.Ack(false)
	case handler.IsRetryable(err):
		ackErr = d.Nack(false, true)
	default:
		c.logger.Warn("Dropping malformed listing event",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		ackErr = d.Nack(false, false)
	}
	if ackErr != nil {
		c.logger.Error("Failed to acknowledge delivery", slog.String("message_id", d.MessageId), slog.Any("error", ackErr))
	}
}

// deliveryAttributes maps AMQP headers to the attribute names Pub/Sub uses.
func deliveryAttributes(d amqp.Delivery) map[string]string {
	attributes := make(map[string]string, len(d.Headers)+2)
	for k, v := range d.Headers {
		if s, ok := v.(string); ok {
			attributes[k] = s
		}
	}
	if _, ok := attributes[constants.AttributeEventType]; !ok && d.Type != "" {
		attributes[constants.AttributeEventType] = d.Type
	}
	if _, ok := attributes[constants.AttributeRequestID]; !ok && d.CorrelationId != "" {
		attributes[constants.AttributeRequestID] = d.CorrelationId
	}

	return attributes
}

func (c *rabbitConsumer) closeConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.conn.IsClosed() {
		return
	}
	if err := c.conn.Close(); err != nil {
		c.logger.Warn("Failed to close RabbitMQ connection", slog.Any("error", err))
	}
}

func (c *rabbitConsumer) stop(context.Context) error {
	c.once.Do(func() { close(c.done) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	c.logger.Info("Closing RabbitMQ consumer")

	return errors.WithStack(c.conn.Close())
}
