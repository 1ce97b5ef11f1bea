package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/myblog/internal/flagx"
	"github.com/dmitrijs2005/myblog/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an explicit zero.
type JsonConfig struct {
	StoreBackend      *string         `json:"store_backend"`
	StorePath         *string         `json:"store_path"`
	RedisURL          *string         `json:"redis_url"`
	NavigationDelay   *timex.Duration `json:"navigation_delay"`
	PendingEditMaxAge *timex.Duration `json:"pending_edit_max_age"`
	PrintDir          *string         `json:"print_dir"`
	LogLevel          *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.StoreBackend, jc.StoreBackend)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.PrintDir, jc.PrintDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.NavigationDelay != nil {
		cfg.NavigationDelay = jc.NavigationDelay.Duration
	}
	if jc.PendingEditMaxAge != nil {
		cfg.PendingEditMaxAge = jc.PendingEditMaxAge.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
