package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, PolicyStrict, cfg.Upload.Policy)
	assert.NotEmpty(t, cfg.Batch.File)
	assert.NotEmpty(t, cfg.Session.File)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EXPENSE_API_BASE_URL", "https://api.example.com")
	t.Setenv("EXPENSE_UPLOAD_POLICY", PolicyPartial)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, PolicyPartial, cfg.Upload.Policy)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg, err := InitializeConfig()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Empty base URL", func(c *Config) { c.API.BaseURL = "" }},
		{"Timeout too small", func(c *Config) { c.API.TimeoutSeconds = 0 }},
		{"Timeout too large", func(c *Config) { c.API.TimeoutSeconds = 301 }},
		{"Bad log level", func(c *Config) { c.Log.Level = "chatty" }},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"Bad policy", func(c *Config) { c.Upload.Policy = "lenient" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	cfg.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
