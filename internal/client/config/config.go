package config

import "time"

// Config holds runtime settings for the showcase client.
type Config struct {
	APIBaseURL        string
	DatabasePath      string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	LogLevel          string

	// Preview windows used on the home screen when no search is active.
	HomePreviewProjects int
	HomePreviewUsers    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api"
	c.DatabasePath = "showcase.db"
	c.RequestTimeout = 15 * time.Second
	c.RequestsPerSecond = 0
	c.LogLevel = "info"
	c.HomePreviewProjects = 4
	c.HomePreviewUsers = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
