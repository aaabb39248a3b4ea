// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers recognized by the event publisher factory.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
