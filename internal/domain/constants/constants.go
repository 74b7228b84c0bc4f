// Package constants holds shared provider names referenced by config and infra.
package constants

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence provider names accepted in config.
const (
	PersistenceProviderMemory   = "memory"
	PersistenceProviderRedis    = "redis"
	PersistenceProviderPostgres = "postgres"
)
