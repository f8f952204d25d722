package service

import (
	"context"
)

// PushMessage is one notification as shown on the device.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport is the outcome of a multicast send.
type PushReport struct {
	Sent   int
	Failed int
	// InvalidTokens were rejected as malformed or unregistered and should be deactivated.
	InvalidTokens []string
}

// NotificationService sends pushes to device registration tokens.
type NotificationService interface {
	// Multicast delivers msg to every token. Per-token failures are counted in the
	// report; an error means the provider could not be reached at all.
	Multicast(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)

	// Send delivers msg to a single token.
	Send(ctx context.Context, token string, msg PushMessage) error
}
