// Package constants holds configuration values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Store backends.
const (
	StoreBackendPostgres  = "postgres"
	StoreBackendFirestore = "firestore"
)

// Push gateway providers.
const (
	PushProviderFCM  = "fcm"
	PushProviderExpo = "expo"
)

// Identity providers.
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)
