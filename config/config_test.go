package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"reminder": map[string]any{
			"leadDays":        3,
			"expiredInterval": "1h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REMINDER_LEADDAYS", want: "reminder.leadDays"},
		{envKey: "REMINDER_EXPIREDINTERVAL", want: "reminder.expiredInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, 3, cfg.Reminder.LeadDays)
	assert.Equal(t, 24*time.Hour, cfg.Reminder.Interval)
	assert.Equal(t, time.Hour, cfg.Reminder.ExpiredInterval)
	assert.Equal(t, 7, cfg.Shopping.DefaultShelfLifeDays)
	assert.Equal(t, 10, cfg.Recommendation.Limit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "5MiB", cfg.Storage.MaxImageSize)
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantBytes int64
		wantErr   bool
	}{
		{name: "defaults", cfg: &Config{}, wantBytes: 5 << 20},
		{
			name:      "human size",
			cfg:       &Config{Storage: &StorageConfig{MaxImageSize: "512KiB"}},
			wantBytes: 512 << 10,
		},
		{
			name:      "explicit bytes win",
			cfg:       &Config{Storage: &StorageConfig{MaxImageSize: "1GB", MaxImageBytes: 1000}},
			wantBytes: 1000,
		},
		{name: "bad size", cfg: &Config{Storage: &StorageConfig{MaxImageSize: "lots"}}, wantErr: true},
		{name: "unknown pubsub provider", cfg: &Config{PubSub: &PubSubConfig{Provider: "kafka"}}, wantErr: true},
		{name: "audience required", cfg: &Config{Worker: &WorkerConfig{VerifyToken: true}}, wantErr: true},
		{name: "negative interval", cfg: &Config{Reminder: &ReminderConfig{Interval: -time.Hour}}, wantErr: true},
		{name: "negative expired interval", cfg: &Config{Reminder: &ReminderConfig{ExpiredInterval: -time.Minute}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := finalize(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBytes, tt.cfg.Storage.MaxImageBytes)
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Reminder: &ReminderConfig{LeadDays: 5, Interval: time.Minute},
		Shopping: &ShoppingConfig{DefaultShelfLifeDays: 14},
	}

	applyDefaults(cfg)

	assert.False(t, cfg.Reminder.Enabled)
	assert.Equal(t, 5, cfg.Reminder.LeadDays)
	assert.Equal(t, time.Minute, cfg.Reminder.Interval)
	assert.Equal(t, 14, cfg.Shopping.DefaultShelfLifeDays)
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
reminder:
  leadDays: 3
  interval: 24h
shopping:
  defaultShelfLifeDays: 7
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("REMINDER_LEADDAYS", "5")
	t.Setenv("REMINDER_INTERVAL", "12h")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	require.NotNil(t, cfg.Reminder)
	assert.Equal(t, 5, cfg.Reminder.LeadDays)
	assert.Equal(t, 12*time.Hour, cfg.Reminder.Interval)
	assert.Equal(t, 7, cfg.Shopping.DefaultShelfLifeDays)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
