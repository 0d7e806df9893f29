package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `env:
  env: test
  servicename: matchday
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readtimeout: 5s
    writetimeout: 10s
    idletimeout: 60s
storage:
  provider: memory
secretkey:
  session: yaml-secret
sportsdata:
  baseurl: https://www.thesportsdb.com/api/v1/json
  apikey: "3"
  timeout: 10s
  requestspersecond: 2
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "matchday", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "memory", cfg.Storage.Provider)
	assert.Equal(t, "yaml-secret", cfg.SecretKey.Session)
	assert.Equal(t, "3", cfg.SportsData.APIKey)
	assert.Equal(t, 10*time.Second, cfg.SportsData.Timeout)
	assert.InDelta(t, 2.0, cfg.SportsData.RequestsPerSecond, 0.001)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("SECRETKEY_SESSION", "env-secret")
	t.Setenv("SPORTSDATA_APIKEY", "premium-key")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey.Session)
	assert.Equal(t, "premium-key", cfg.SportsData.APIKey)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "file", cfg.Storage.Provider)
	assert.Equal(t, "data", cfg.Storage.Path)
	assert.NotEmpty(t, cfg.SportsData.BaseURL)
	assert.Equal(t, "3", cfg.SportsData.APIKey)
	assert.NotZero(t, cfg.SportsData.Timeout)
	assert.NotZero(t, cfg.SportsData.RequestsPerSecond)
}
