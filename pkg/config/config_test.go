package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, "csv", c.Source.Type)
	assert.Equal(t, "telegram", c.Notify.Channel)
	assert.Equal(t, 10*time.Second, c.Notify.Timeout)
	assert.Equal(t, "https://api.telegram.org", c.Notify.Telegram.BaseURL)
	assert.Equal(t, 8050, c.Dashboard.Port)
	assert.Equal(t, 30, c.Dashboard.Window)
	assert.Equal(t, "memory", c.Dashboard.Cache)
	require.NotNil(t, c.Kafka.RequiredAcks)
	assert.Equal(t, -1, *c.Kafka.RequiredAcks)
	assert.Equal(t, "Markdown", c.Notify.Telegram.ParseMode)
	assert.Equal(t, "info", c.Log.Level)
}

func TestParse_ExplicitZeroAcks(t *testing.T) {
	c, err := Parse([]byte("kafka: {required_acks: 0}\n"))
	require.NoError(t, err)
	require.NotNil(t, c.Kafka.RequiredAcks)
	assert.Equal(t, 0, *c.Kafka.RequiredAcks)

	_, err = Parse([]byte("kafka: {required_acks: 2}\n"))
	assert.Error(t, err)
}

func TestParse_Regimes(t *testing.T) {
	c, err := Parse([]byte(`
regimes:
  NUPL:
    bands:
      - {label: low, min: 0, max: 0.3}
      - {label: high, min: 0.3, max: 1}
    messages:
      high: "Euphoria."
`))
	require.NoError(t, err)
	require.Len(t, c.Regimes["NUPL"].Bands, 2)
	assert.Equal(t, 0.3, c.Regimes["NUPL"].Bands[0].Max)
	assert.Equal(t, "Euphoria.", c.Regimes["NUPL"].Messages["high"])
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"channel":    "notify: {channel: email}",
		"source":     "source: {type: s3}",
		"window":     "dashboard: {window: 1000}",
		"band order": "regimes: {NUPL: {bands: [{label: low, min: 1, max: 0}]}}",
		"band label": "regimes: {NUPL: {bands: [{label: extreme, min: 0, max: 1}]}}",
		"clickhouse": "source: {type: clickhouse}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	path := writeConfig(t, "notify: {channel: telegram}\n")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("CHAINPULSE_SOURCE_PATH", "/data/m.csv")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("KAFKA_TOPIC", "alerts")
	t.Setenv("REDIS_DB", "3")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", c.Notify.Telegram.BotToken)
	assert.Equal(t, "-100200", c.Destination())
	assert.Equal(t, "/data/m.csv", c.Source.Path)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "alerts", c.Notify.Kafka.Topic)
	assert.Equal(t, 3, c.Redis.DB)
	require.NoError(t, c.ValidateNotify())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateNotify(t *testing.T) {
	c, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Error(t, c.ValidateNotify())

	c.Notify.DryRun = true
	assert.NoError(t, c.ValidateNotify())

	c.Notify.DryRun = false
	c.Notify.Channel = "kafka"
	assert.Error(t, c.ValidateNotify())
	c.Kafka.Brokers = []string{"localhost:9092"}
	assert.NoError(t, c.ValidateNotify())
	assert.Equal(t, "chainpulse.reports", c.Destination())
}

func TestParse_ShippedConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	require.NoError(t, err)
	assert.True(t, c.Metrics.Enabled)
}
