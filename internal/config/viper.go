package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Policy names accepted for upload.policy.
const (
	PolicyStrict  = "strict"
	PolicyPartial = "partial"
)

// Config represents the complete application configuration.
type Config struct {
	API struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"api" yaml:"api"`

	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Upload struct {
		// Policy controls batch failure handling: "strict" rejects the whole
		// upload when any row is invalid, "partial" drops invalid rows and
		// keeps the rest.
		Policy string `mapstructure:"policy" yaml:"policy"`
	} `mapstructure:"upload" yaml:"upload"`

	Batch struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"batch" yaml:"batch"`

	Session struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"session" yaml:"session"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config.yaml in $HOME/.expense-cli, .expense-cli or the working
// directory, then EXPENSE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-cli")
	v.AddConfigPath(".expense-cli")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout_seconds", 30)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("upload.policy", PolicyStrict)

	stateDir := defaultStateDir()
	v.SetDefault("batch.file", filepath.Join(stateDir, "pending-batch.yaml"))
	v.SetDefault("session.file", filepath.Join(stateDir, "session.yaml"))
}

// defaultStateDir is where the pending batch and session live between
// invocations.
func defaultStateDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".expense-cli"
	}
	return filepath.Join(homeDir, ".expense-cli")
}

func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Upload.Policy != PolicyStrict && config.Upload.Policy != PolicyPartial {
		return fmt.Errorf("invalid upload policy: %s (must be '%s' or '%s')", config.Upload.Policy, PolicyStrict, PolicyPartial)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logger from the Config values
// rather than raw environment variables.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
