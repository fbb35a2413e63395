package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ChainPulse/pkg/util"
)

type Config struct {
	Environment string    `yaml:"environment" default:"development" validate:"oneof=development staging production test"`
	Log         LogConfig `yaml:"log"`
	Source      struct {
		Type  string `yaml:"type" default:"csv" validate:"oneof=csv clickhouse"`
		Path  string `yaml:"path" default:"data/onchain_metrics.csv" validate:"required_if=Type csv"`
		Table string `yaml:"table" default:"onchain_metrics" validate:"required_if=Type clickhouse"`
	} `yaml:"source"`
	Notify struct {
		Channel  string        `yaml:"channel" default:"telegram" validate:"oneof=telegram kafka"`
		Timeout  time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
		DryRun   bool          `yaml:"dry_run"`
		Telegram struct {
			BotToken  string `yaml:"bot_token"`
			ChatID    string `yaml:"chat_id"`
			BaseURL   string `yaml:"base_url" default:"https://api.telegram.org" validate:"url"`
			ParseMode string `yaml:"parse_mode" default:"Markdown" validate:"omitempty,oneof=Markdown MarkdownV2 HTML"`
		} `yaml:"telegram"`
		Kafka struct {
			Topic string `yaml:"topic" default:"chainpulse.reports"`
		} `yaml:"kafka"`
	} `yaml:"notify"`
	Dashboard struct {
		Port            int           `yaml:"port" default:"8050" validate:"min=1,max=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		Window          int           `yaml:"window" default:"30" validate:"min=1,max=365"`
		Cache           string        `yaml:"cache" default:"memory" validate:"oneof=memory redis"`
		CacheTTL        time.Duration `yaml:"cache_ttl" default:"5m"`
		LiveInterval    time.Duration `yaml:"live_interval"`
		RefreshEvery    time.Duration `yaml:"refresh_every" default:"10s"`
		RefreshBurst    int           `yaml:"refresh_burst" default:"1" validate:"min=1"`
	} `yaml:"dashboard"`
	Metrics struct {
		Enabled        bool   `yaml:"enabled"`
		Path           string `yaml:"path" default:"/metrics"`
		PushgatewayURL string `yaml:"pushgateway_url" validate:"omitempty,url"`
		Job            string `yaml:"job" default:"chainpulse_notify"`
	} `yaml:"metrics"`
	Kafka struct {
		Brokers      []string      `yaml:"brokers"`
		RequiredAcks *int          `yaml:"required_acks" default:"-1" validate:"oneof=-1 0 1"`
		Compression  string        `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port" default:"9000"`
		Database         string        `yaml:"database" default:"default"`
		User             string        `yaml:"user" default:"default"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		DialTimeout      time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout      time.Duration `yaml:"read_timeout" default:"10s"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time" default:"30s"`
	} `yaml:"clickhouse"`
	Redis struct {
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix" default:"chainpulse"`
	} `yaml:"redis"`
	// Regimes overrides the built-in threshold and message tables per metric.
	Regimes map[string]RegimeConfig `yaml:"regimes" validate:"dive"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"json" validate:"oneof=json console"`
	Output string `yaml:"output" default:"stderr"`
}

// RegimeConfig is the YAML form of one metric's bands and messages.
type RegimeConfig struct {
	Bands    []BandConfig      `yaml:"bands" validate:"dive"`
	Messages map[string]string `yaml:"messages"`
}

type BandConfig struct {
	Label string  `yaml:"label" validate:"oneof=low neutral high"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max" validate:"gtfield=Min"`
}

// Load reads and parses a YAML configuration file, applying defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(b)
}

// Parse decodes YAML bytes, applies defaults and validates.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides it with environment
// variables. A .env file next to the working directory is read first when present.
func LoadWithEnv(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Notify.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Notify.Telegram.ChatID = v
	}
	if v := os.Getenv("CHAINPULSE_SOURCE_PATH"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("NOTIFY_CHANNEL"); v != "" {
		c.Notify.Channel = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = util.SplitList(v)
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Notify.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		c.Redis.DB = util.ParseIntDefault(v, c.Redis.DB)
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("PUSHGATEWAY_URL"); v != "" {
		c.Metrics.PushgatewayURL = v
	}
}

var validate = validator.New()

// Validate checks struct tags and cross-section requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Source.Type == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for source.type clickhouse")
	}
	if c.Dashboard.Cache == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required for dashboard.cache redis")
	}
	return nil
}

// ValidateNotify checks what the notify command needs beyond Validate.
// Credentials are not required for a dry run.
func (c *Config) ValidateNotify() error {
	if c.Notify.DryRun {
		return nil
	}
	switch c.Notify.Channel {
	case "telegram":
		if c.Notify.Telegram.BotToken == "" {
			return fmt.Errorf("telegram bot token is not set (TELEGRAM_BOT_TOKEN)")
		}
		if c.Notify.Telegram.ChatID == "" {
			return fmt.Errorf("telegram chat id is not set (TELEGRAM_CHAT_ID)")
		}
	case "kafka":
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required for notify.channel kafka")
		}
		if c.Notify.Kafka.Topic == "" {
			return fmt.Errorf("notify.kafka.topic is required for notify.channel kafka")
		}
	}
	return nil
}

// Destination returns the target of the configured channel.
func (c *Config) Destination() string {
	if c.Notify.Channel == "kafka" {
		return c.Notify.Kafka.Topic
	}
	return c.Notify.Telegram.ChatID
}
