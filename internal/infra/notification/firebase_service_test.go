package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blvgames/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	last    *messaging.Message
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.last = message

	return "projects/p/messages/1", nil
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, message.Tokens)

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFirebaseService_Multicast_Chunks(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = "token"
	}

	report, err := svc.Multicast(context.Background(), tokens, service.PushMessage{Title: "Juego aprobado", Body: "Retro Racer ya es público"})
	require.NoError(t, err)

	assert.Equal(t, 1201, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[2], 201)
}

func TestFirebaseService_Multicast_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	report, err := svc.Multicast(context.Background(), nil, service.PushMessage{Title: "t"})
	require.NoError(t, err)

	assert.Zero(t, report.Sent)
	assert.Empty(t, sender.batches)
}

func TestFirebaseService_Send(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	err := svc.Send(context.Background(), "tok", service.PushMessage{Title: "blvgames.bo", Body: "hola", Data: map[string]string{"type": "test"}})
	require.NoError(t, err)

	require.NotNil(t, sender.last)
	assert.Equal(t, "tok", sender.last.Token)
	assert.Equal(t, "hola", sender.last.Notification.Body)
	assert.Equal(t, "test", sender.last.Data["type"])
}

func TestLogOnlyService(t *testing.T) {
	svc := NewLogOnlyService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	report, err := svc.Multicast(context.Background(), []string{"a", "b"}, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Empty(t, report.InvalidTokens)
	assert.NoError(t, svc.Send(context.Background(), "a", service.PushMessage{Title: "t"}))
}
