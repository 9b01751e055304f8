package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Damage  DamageConfig
	Logging LogConfig
	// DiceSeed replays the same rolls in cmd/ tools; zero seeds from the clock
	DiceSeed int64 `env:"DICE_SEED"`
}

// RedisConfig holds Redis-specific configuration. An empty URL and address
// selects the in-memory resolution store.
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"RESOLUTION_TTL"` // zero keeps resolutions forever
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// DamageConfig holds the damage application settings
type DamageConfig struct {
	Colors        bool   `env:"DAMAGE_COLORS" envDefault:"true"`
	CantripPolicy string `env:"CANTRIP_SAVE_POLICY" envDefault:"half"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	if _, err := c.Damage.CantripSavePolicy(); err != nil {
		return dnderr.Wrap(err, "CANTRIP_SAVE_POLICY")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return dnderr.InvalidArgumentf("LOG_LEVEL: unknown level %q", c.Logging.Level)
	}
	if c.Redis.DB < 0 {
		return dnderr.InvalidArgumentf("REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	if c.Redis.TTL < 0 {
		return dnderr.InvalidArgumentf("RESOLUTION_TTL must not be negative, got %s", c.Redis.TTL)
	}
	return nil
}

// CantripSavePolicy parses CANTRIP_SAVE_POLICY
func (c DamageConfig) CantripSavePolicy() (application.CantripPolicy, error) {
	return application.ParseCantripPolicy(c.CantripPolicy)
}

// NewLogger builds a production or development logger at the configured level
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, dnderr.InvalidArgumentf("LOG_LEVEL: unknown level %q", cfg.Level)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
