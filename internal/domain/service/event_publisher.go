package service

import (
	"context"

	"blvgames/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingModerated announces a committed moderation decision
	PublishListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
