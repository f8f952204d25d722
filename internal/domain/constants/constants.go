// Package constants holds configuration values compared across packages.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Object storage providers
const (
	StorageProviderBlob  = "blob"
	StorageProviderMinio = "minio"
)

// Event attribute and type names
const (
	EventTypeListingModerated = "listing.moderated"
	AttributeEventType        = "event_type"
	AttributeRequestID        = "request_id"
)
