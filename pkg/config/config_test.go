package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	viper.Reset()

	err := config.Load(t.TempDir())
	require.NoError(t, err)

	cfg := config.GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "1m", cfg.RateLimit.Window)
	assert.Equal(t, 10000, cfg.Sanitizer.MaxLength)
	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	content := []byte(`
server:
  port: 9999
rate_limit:
  max_requests: 5
  window: "30s"
provider:
  name: "anthropic"
  instructions:
    - "Reply with the JSON object only."
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	err := config.Load(dir)
	require.NoError(t, err)

	cfg := config.GetConfig()
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "30s", cfg.RateLimit.Window)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, []string{"Reply with the JSON object only."}, cfg.Provider.Instructions)

	// untouched fields still get defaults
	assert.Equal(t, 10, cfg.Sanitizer.MinLength)
}

func TestWindowDuration(t *testing.T) {
	rl := config.RateLimitConfig{Window: "90s"}
	d, err := rl.WindowDuration()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", d.String())

	rl.Window = "not-a-duration"
	_, err = rl.WindowDuration()
	assert.Error(t, err)
}
