package pubsub

import (
	"encoding/json"

	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/entity"

	"github.com/pkg/errors"
)

// encodeListingModerated returns the JSON payload and the routing attributes
// shared by every publisher.
func encodeListingModerated(event *entity.ListingModeratedEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("nil event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttributeEventType: constants.EventTypeListingModerated,
		"event_id":                   event.EventID,
		"game_id":                    event.GameID.String(),
		"owner_id":                   event.OwnerID.String(),
		"to_status":                  event.ToStatus.String(),
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return data, attributes, nil
}
