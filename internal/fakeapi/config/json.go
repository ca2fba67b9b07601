package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devshowcase/internal/flagx"
	"github.com/dmitrijs2005/devshowcase/internal/timex"
)

// JsonConfig is the on-disk form of Config. Absent keys leave the current
// value alone.
type JsonConfig struct {
	Addr      string          `json:"addr"`
	SecretKey string          `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	LogLevel  string          `json:"log_level"`
	Seed      *bool           `json:"seed"`
}

// parseJson overlays cfg with the file named by -c or -config. Read and
// decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
}
