// Package config loads runtime configuration for the myblog client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. MYBLOG_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   storage backend: sqlite, bolt, redis or memory
//	-p string   SQLite DSN or bbolt file
//	-r string   Redis URL
//	-d int      delay before a form moves to the next view (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so "2s" and integer nanoseconds both work.
// Missing keys keep the default.
//
//	{
//	  "store_backend": "bolt",
//	  "store_path": "myblog.bolt",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "navigation_delay": "2s",
//	  "pending_edit_max_age": "10m",
//	  "print_dir": "prints",
//	  "log_level": "info"
//	}
package config
