// Package config loads the service configuration from a YAML file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

type Config struct {
	Env            EnvConfig             `json:"env" yaml:"env"`
	HTTP           HTTPConfig            `json:"http" yaml:"http"`
	Worker         *WorkerConfig         `json:"worker" yaml:"worker"`
	Postgres       *postgres.DBConn      `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
	SecretKey      SecretKeyConfig       `json:"secretKey" yaml:"secretKey"`
	Firebase       *FirebaseConfig       `json:"firebase" yaml:"firebase"`
	QRCode         *QRCodeConfig         `json:"qrcode" yaml:"qrcode"`
	PubSub         *PubSubConfig         `json:"pubsub" yaml:"pubsub"`
	Reminder       *ReminderConfig       `json:"reminder" yaml:"reminder"`
	Shopping       *ShoppingConfig       `json:"shopping" yaml:"shopping"`
	Recommendation *RecommendationConfig `json:"recommendation" yaml:"recommendation"`
	Storage        *StorageConfig        `json:"storage" yaml:"storage"`
	Metrics        *MetricsConfig        `json:"metrics" yaml:"metrics"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	// Debug logs every request and SQL statement
	Debug bool `json:"debug" yaml:"debug"`
	Log   Log  `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type HTTPConfig struct {
	Port int `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	// MaxRequestBodySize uses echo's BodyLimit syntax, e.g. 2MB
	MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
}

type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// WorkerConfig is the Pub/Sub push endpoint of the reminder worker.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port" validate:"gte=1,lte=65535"`
	// VerifyToken checks the OIDC token Pub/Sub attaches to push requests
	VerifyToken bool   `json:"verifyToken" yaml:"verifyToken"`
	Audience    string `json:"audience" yaml:"audience" validate:"required_if=VerifyToken true"`
}

// SecretKeyConfig holds the HMAC secret shared with the identity provider.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"gte=64,lte=2048"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the public origin that share links point at
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"omitempty,url"`
}

type PubSubConfig struct {
	// Provider is "local" (HTTP POST to the worker) or "google". Empty disables publishing.
	Provider      string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ReminderConfig drives the two expiration sweeps.
type ReminderConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// LeadDays is the expiring-soon window in days
	LeadDays            int           `json:"leadDays" yaml:"leadDays" validate:"gte=1,lte=365"`
	Interval            time.Duration `json:"interval" yaml:"interval" validate:"gte=0"`
	ExpiredInterval     time.Duration `json:"expiredInterval" yaml:"expiredInterval" validate:"gte=0"`
	DispatchConcurrency int           `json:"dispatchConcurrency" yaml:"dispatchConcurrency" validate:"gte=1,lte=256"`
	RunOnStart          bool          `json:"runOnStart" yaml:"runOnStart"`
}

type ShoppingConfig struct {
	// DefaultShelfLifeDays applies when an item is purchased without an expiration date
	DefaultShelfLifeDays int `json:"defaultShelfLifeDays" yaml:"defaultShelfLifeDays" validate:"gte=1"`
}

type RecommendationConfig struct {
	Limit int `json:"limit" yaml:"limit" validate:"gte=1,lte=100"`
}

// StorageConfig is the blob bucket for product images.
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. file:///var/ecocart or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// MaxImageSize is a human readable limit such as 5MB or 512KiB
	MaxImageSize string `json:"maxImageSize" yaml:"maxImageSize"`
	// MaxImageBytes is derived from MaxImageSize when unset
	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path" validate:"omitempty,startswith=/"`
}
