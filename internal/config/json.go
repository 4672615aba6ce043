package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" apart from zero so a partial file only overrides what it names.
type JsonConfig struct {
	StorageBackend  *string         `json:"storage_backend"`
	DatabasePath    *string         `json:"database_path"`
	RedisAddr       *string         `json:"redis_addr"`
	RedisPassword   *string         `json:"redis_password"`
	RedisDB         *int            `json:"redis_db"`
	RedisKeyPrefix  *string         `json:"redis_key_prefix"`
	AuthDelay       *timex.Duration `json:"auth_delay"`
	ContactDelay    *timex.Duration `json:"contact_delay"`
	NotificationTTL *timex.Duration `json:"notification_ttl"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.StorageBackend, jc.StorageBackend)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
	if jc.ContactDelay != nil {
		cfg.ContactDelay = jc.ContactDelay.Duration
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
