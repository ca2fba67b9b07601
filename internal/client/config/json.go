package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/devshowcase/internal/flagx"
	"github.com/dmitrijs2005/devshowcase/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	DatabasePath        string          `json:"database_path"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	RequestsPerSecond   *float64        `json:"requests_per_second"`
	LogLevel            string          `json:"log_level"`
	HomePreviewProjects *int            `json:"home_preview_projects"`
	HomePreviewUsers    *int            `json:"home_preview_users"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without the flag nothing happens. Read and decode errors panic.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.HomePreviewProjects != nil {
		cfg.HomePreviewProjects = *jc.HomePreviewProjects
	}
	if jc.HomePreviewUsers != nil {
		cfg.HomePreviewUsers = *jc.HomePreviewUsers
	}
}
