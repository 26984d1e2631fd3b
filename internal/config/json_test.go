package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{
		"app": { "version": "2.0.0" },
		"server": {
			"http_address": "localhost:8081",
			"request_timeout": "30s",
			"shutdown_timeout": 2000000000,
			"allowed_origins": ["http://a.test"],
			"rate_limit_rps": 5,
			"rate_limit_burst": 10
		},
		"storage": {
			"memory": { "shards": 4, "skip_demo_seed": true }
		}
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 10, cfg.Server.RateLimitBurst)
	assert.Equal(t, 4, cfg.Storage.Memory.Shards)
	assert.True(t, cfg.Storage.Memory.SkipDemoSeed)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{"server": `))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{"server": {"request_timeout": "soon"}}`))

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
