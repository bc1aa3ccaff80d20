// Package config loads runtime configuration from the environment
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Save stores
const (
	StoreRedis  = "redis"
	StoreBolt   = "bolt"
	StoreMemory = "memory"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the runtime configuration. A zero Seed means unseeded rolls.
type Config struct {
	Store        string        `env:"IDLE_STORE"         envDefault:"bolt"`
	SlotID       string        `env:"IDLE_SLOT"          envDefault:"default"`
	RedisAddr    string        `env:"IDLE_REDIS_ADDR"    envDefault:"localhost:6379"`
	RedisURL     string        `env:"IDLE_REDIS_URL"`
	BoltPath     string        `env:"IDLE_BOLT_PATH"     envDefault:"idle.db"`
	BalancePath  string        `env:"IDLE_BALANCE_PATH"`
	TickInterval time.Duration `env:"IDLE_TICK_INTERVAL" envDefault:"1s"`
	SaveInterval time.Duration `env:"IDLE_SAVE_INTERVAL" envDefault:"30s"`
	Seed         uint64        `env:"IDLE_SEED"`
	LogFormat    string        `env:"IDLE_LOG_FORMAT"    envDefault:"text"`
	LogLevel     string        `env:"IDLE_LOG_LEVEL"     envDefault:"info"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Store {
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" && strings.TrimSpace(c.RedisURL) == "" {
			vb.Field("IDLE_REDIS_ADDR", "is required for the redis store")
		}
	case StoreBolt:
		errors.ValidateRequired("IDLE_BOLT_PATH", c.BoltPath, vb)
	case StoreMemory:
	default:
		vb.InvalidField("IDLE_STORE", "must be one of redis, bolt, memory")
	}

	errors.ValidateRequired("IDLE_SLOT", c.SlotID, vb)
	if c.TickInterval <= 0 {
		vb.InvalidField("IDLE_TICK_INTERVAL", "must be positive")
	}
	if c.SaveInterval <= 0 {
		vb.InvalidField("IDLE_SAVE_INTERVAL", "must be positive")
	}
	errors.ValidateEnum("IDLE_LOG_FORMAT", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("IDLE_LOG_LEVEL", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

// NewLogger builds the slog logger described by the config
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
