package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{Addr: ":5000", SecretKey: "secretKey", TokenTTL: 24 * time.Hour, LogLevel: "info", Seed: true}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":7000","secret_key":"file","token_ttl":"30m","seed":false}`), 0o600))

	os.Args = []string{"fakeapi", "-c", path, "-k", "flag", "-ttl", "5"}
	cfg := LoadConfig()

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "flag", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Seed)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", ":1", "-k", "s", "-ttl", "60", "-l", "debug", "-seed=false"},
			expected: Config{Addr: ":1", SecretKey: "s", TokenTTL: time.Hour, LogLevel: "debug"}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-d", "x.db", "-a", ":2"},
			expected: Config{Addr: ":2"}},
		{name: "incorrect ttl", args: []string{"cmd", "-ttl", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			var cfg Config

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseJson_BadFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

	os.Args = []string{"cmd", "-config", path}
	assert.Panics(t, func() { parseJson(&Config{}) })

	os.Args = []string{"cmd", "-config", filepath.Join(t.TempDir(), "missing.json")}
	assert.Panics(t, func() { parseJson(&Config{}) })
}
