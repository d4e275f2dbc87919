package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL   string `env:"TEST_CFG_BASE_URL" envDefault:"http://localhost:8000"`
	TimeoutMS int    `env:"TEST_CFG_TIMEOUT_MS" envDefault:"10000"`
	Debug     bool   `env:"TEST_CFG_DEBUG" envDefault:"false"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 10000, cfg.TimeoutMS)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("TEST_CFG_BASE_URL", "https://api.cellerhut.test")
	t.Setenv("TEST_CFG_TIMEOUT_MS", "2500")
	t.Setenv("TEST_CFG_DEBUG", "true")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "https://api.cellerhut.test", cfg.BaseURL)
	assert.Equal(t, 2500, cfg.TimeoutMS)
	assert.True(t, cfg.Debug)
}

func TestLoadWithPrefix(t *testing.T) {
	t.Setenv("STAGING_TEST_CFG_TIMEOUT_MS", "750")

	var cfg testConfig
	require.NoError(t, LoadWithPrefix(&cfg, "STAGING_"))
	assert.Equal(t, 750, cfg.TimeoutMS)
}

type requiredConfig struct {
	Token string `env:"TEST_CFG_TOKEN,required"`
}

func TestLoad_RequiredFieldMissing(t *testing.T) {
	var cfg requiredConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidTypes_AllReported(t *testing.T) {
	t.Setenv("TEST_CFG_TIMEOUT_MS", "ten")
	t.Setenv("TEST_CFG_DEBUG", "maybe")

	var cfg testConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Contains(t, err.Error(), "TimeoutMS")
	assert.Contains(t, err.Error(), "Debug")
}
