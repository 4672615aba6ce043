package config

import (
	"fmt"
	"os"
	"time"
)

// Storage backends understood by the CLI.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the portfolio CLI.
//
// AuthDelay and ContactDelay are the fixed simulated round-trip times of the
// mock backend; NotificationTTL is how long a notification stays pending.
type Config struct {
	StorageBackend  string        `env:"PORTFOLIO_STORAGE"`
	DatabasePath    string        `env:"PORTFOLIO_DB_PATH"`
	RedisAddr       string        `env:"PORTFOLIO_REDIS_ADDR"`
	RedisPassword   string        `env:"PORTFOLIO_REDIS_PASSWORD"`
	RedisDB         int           `env:"PORTFOLIO_REDIS_DB"`
	RedisKeyPrefix  string        `env:"PORTFOLIO_REDIS_PREFIX"`
	AuthDelay       time.Duration `env:"PORTFOLIO_AUTH_DELAY"`
	ContactDelay    time.Duration `env:"PORTFOLIO_CONTACT_DELAY"`
	NotificationTTL time.Duration `env:"PORTFOLIO_NOTIFICATION_TTL"`
	LogLevel        string        `env:"PORTFOLIO_LOG_LEVEL"`
}

// LoadDefaults populates c with the built-in settings.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DatabasePath = "portfolio.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisKeyPrefix = "portfolio:"
	c.AuthDelay = 1500 * time.Millisecond
	c.ContactDelay = 2 * time.Second
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings the CLI cannot start with.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("sqlite backend requires a database path")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis backend requires an address")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.AuthDelay < 0 || c.ContactDelay < 0 || c.NotificationTTL < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// the environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
