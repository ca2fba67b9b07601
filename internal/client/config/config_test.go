package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000/api", c.APIBaseURL)
	assert.Equal(t, "showcase.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 4, c.HomePreviewProjects)
	assert.Equal(t, 3, c.HomePreviewUsers)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "http://json:1/api",
		"database_path":   "json.db",
		"request_timeout": "30s",
	})
	t.Setenv(EnvAPIURL, "http://env:1/api")
	t.Setenv(EnvDB, "env.db")
	t.Setenv(EnvLogLevel, "warn")

	os.Args = []string{"testbin", "-c", path, "-a", "http://flag:1/api"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://flag:1/api", cfg.APIBaseURL, "flag wins")
	assert.Equal(t, "json.db", cfg.DatabasePath, "json beats env")
	assert.Equal(t, "warn", cfg.LogLevel, "env beats defaults")
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
