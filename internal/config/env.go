package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with PORTFOLIO_* variables. Unset variables keep the
// value from earlier sources. Panics on unparsable values.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
