package config

import (
	"flag"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   storage backend
//	-d string   SQLite database file
//	-r string   Redis address
//	-l string   log level
//
// Only these flags are considered; -c/-config belongs to parseJson.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address (host:port)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
