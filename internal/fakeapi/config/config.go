// Package config handles configuration for the fake showcase API: defaults,
// an optional JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the fake API server.
//
// Fields:
//   - Addr: listen address of the HTTP server.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Development only.
//   - TokenTTL: lifetime of issued tokens.
//   - Seed: load the demo users, projects and comments on start.
type Config struct {
	Addr      string
	SecretKey string
	TokenTTL  time.Duration
	LogLevel  string
	Seed      bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = "secretKey"
	c.TokenTTL = 24 * time.Hour
	c.LogLevel = "info"
	c.Seed = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
