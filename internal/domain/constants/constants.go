// Package constants holds configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ReminderTitle is the push notification title per reminder kind.
const (
	ReminderTitleExpiring = "商品即將過期"
	ReminderTitleExpired  = "商品已過期"
)

// MaxFCMBatchSize is the largest multicast Firebase accepts.
const MaxFCMBatchSize = 500

// TopProductsLimit is the number of products shown on the admin dashboard.
const TopProductsLimit = 5

// MaxItemQuantity caps the quantity of one list item, merges included.
const MaxItemQuantity = 9999
