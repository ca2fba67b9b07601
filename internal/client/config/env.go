package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL   = "SHOWCASE_API_URL"
	EnvDB       = "SHOWCASE_DB"
	EnvTimeout  = "SHOWCASE_TIMEOUT"
	EnvRPS      = "SHOWCASE_RPS"
	EnvLogLevel = "SHOWCASE_LOG_LEVEL"
)

// parseEnv overlays Config with SHOWCASE_* variables. A .env file in the
// working directory is loaded first when present; it never overrides
// variables that are already set. Malformed numbers panic, like bad flags.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvRPS); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RequestsPerSecond = rps
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
