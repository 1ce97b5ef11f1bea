package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
)

// Config holds runtime settings for the myblog client.
//
// PendingEditMaxAge bounds how old an edit handoff may be; 0 accepts any age.
type Config struct {
	StoreBackend      string        `env:"MYBLOG_STORE_BACKEND"`
	StorePath         string        `env:"MYBLOG_STORE_PATH"`
	RedisURL          string        `env:"MYBLOG_REDIS_URL"`
	NavigationDelay   time.Duration `env:"MYBLOG_NAVIGATION_DELAY"`
	PendingEditMaxAge time.Duration `env:"MYBLOG_PENDING_EDIT_MAX_AGE"`
	PrintDir          string        `env:"MYBLOG_PRINT_DIR"`
	LogLevel          string        `env:"MYBLOG_LOG_LEVEL"`
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.StoreBackend = kv.BackendSQLite
	c.StorePath = "myblog.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.NavigationDelay = 2 * time.Second
	c.PendingEditMaxAge = 10 * time.Minute
	c.PrintDir = "prints"
	c.LogLevel = "info"
}

// StoreOptions maps the storage settings onto kv.Open.
func (c *Config) StoreOptions() kv.Options {
	return kv.Options{Backend: c.StoreBackend, Path: c.StorePath, RedisURL: c.RedisURL}
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case kv.BackendSQLite, kv.BackendBolt, kv.BackendRedis, kv.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StoreBackend)
	}
	if c.NavigationDelay < 0 {
		return fmt.Errorf("navigation delay must not be negative, got %s", c.NavigationDelay)
	}
	if c.PendingEditMaxAge < 0 {
		return fmt.Errorf("pending edit max age must not be negative, got %s", c.PendingEditMaxAge)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file, the environment and
// args (normally os.Args[1:]). Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
