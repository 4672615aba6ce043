// Package config loads runtime configuration for the portfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. PORTFOLIO_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite database file
//	-r string   Redis address (host:port)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "1500ms" or integer nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "database_path": "portfolio.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 0,
//	  "redis_key_prefix": "portfolio:",
//	  "auth_delay": "1500ms",
//	  "contact_delay": "2s",
//	  "notification_ttl": "3s",
//	  "log_level": "info"
//	}
package config
