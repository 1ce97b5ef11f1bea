package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/myblog/internal/flagx"
)

// parseFlags populates cfg from the flags it owns; other arguments are
// filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-s", "-p", "-r", "-d", "-l"})

	fs := flag.NewFlagSet("myblog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "storage backend (sqlite, bolt, redis, memory)")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "SQLite DSN or bbolt file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	delay := fs.Int("d", int(cfg.NavigationDelay.Seconds()), "delay before moving to the next view (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// Only an explicit -d replaces the configured delay, which may hold
	// sub-second precision from JSON or the environment.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "d" {
			cfg.NavigationDelay = time.Duration(*delay) * time.Second
		}
	})
	return nil
}
