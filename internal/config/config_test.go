package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takashabe/learningsuite-mcp/internal/learningsuite"
	"github.com/takashabe/learningsuite-mcp/internal/transport"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LEARNINGSUITE_API_KEY",
		"LEARNINGSUITE_BASE_URL",
		"MCP_TRANSPORT",
		"MCP_HTTP_ADDR",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEARNINGSUITE_API_KEY", "secret")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, learningsuite.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, transport.TypeStdio, cfg.Transport)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "learningsuite-mcp", cfg.Name)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load(nil)
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = Load([]string{"--api-key", "   "})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEARNINGSUITE_API_KEY", "from-env")
	t.Setenv("MCP_TRANSPORT", "streamable-http")

	cfg, err := Load([]string{
		"--api-key", "from-flag",
		"--base-url", "http://localhost:9000/api/v1",
		"--addr", "127.0.0.1:9090",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.APIKey)
	assert.Equal(t, "http://localhost:9000/api/v1", cfg.BaseURL)
	assert.Equal(t, transport.TypeStreamableHTTP, cfg.Transport)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RejectsUnknownTransport(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--api-key", "k", "--transport", "sse"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse flags")
}

func TestConfig_StringMasksKey(t *testing.T) {
	cfg := &Config{APIKey: "abcdef123456", Transport: transport.TypeStdio}

	s := cfg.String()
	assert.NotContains(t, s, "abcdef123456")
	assert.Contains(t, s, "********3456")
}
