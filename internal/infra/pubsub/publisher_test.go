package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blvgames/config"
	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.ListingModeratedEvent {
	return &entity.ListingModeratedEvent{
		EventID:    uuid.NewString(),
		GameID:     uuid.New(),
		GameName:   "Retro Racer",
		OwnerID:    uuid.New(),
		ActorID:    uuid.New(),
		Action:     entity.ModerationApprove,
		FromStatus: entity.GameStatusPending,
		ToStatus:   entity.GameStatusApproved,
		OccurredAt: time.Now().UTC().Truncate(time.Second),
		RequestID:  "req-1",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := sampleEvent()

	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, srv.Client(), discardLogger())
	require.NoError(t, publisher.PublishListingModerated(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.EventID, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeListingModerated, received.Message.Attributes[constants.AttributeEventType])

	var decoded entity.ListingModeratedEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, event.GameID, decoded.GameID)
	assert.Equal(t, entity.GameStatusApproved, decoded.ToStatus)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, srv.Client(), discardLogger())
	err := publisher.PublishListingModerated(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg

	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true

	return nil
}

func TestRabbitMQPublisher_PublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &rabbitMQPublisher{ch: ch, exchange: "blvgames.events", routingKey: "listing.moderated", logger: discardLogger()}
	event := sampleEvent()

	require.NoError(t, publisher.PublishListingModerated(context.Background(), event))

	assert.Equal(t, "blvgames.events", ch.exchange)
	assert.Equal(t, "listing.moderated", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, event.EventID, ch.msg.MessageId)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, event.GameID.String(), ch.msg.Headers["game_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	logger := discardLogger()

	noop, err := newPublisher(context.Background(), nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishListingModerated(context.Background(), sampleEvent()))

	local, err := newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, logger)
	assert.Error(t, err)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}, logger)
	assert.Error(t, err)

	_, err = newPublisher(context.Background(), &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
