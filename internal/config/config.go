// Package config handles configuration loading for taskdown. It supports
// XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for taskdown. It is loaded once at
// startup and treated as read-only afterward.
type Config struct {
	Remote    RemoteConfig    `mapstructure:"remote"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
}

// RemoteConfig holds settings for the remote-model strategy's
// OpenAI-compatible endpoint.
type RemoteConfig struct {
	// Provider selects the transport backend: "openai" or "anthropic".
	Provider string `mapstructure:"provider"`
	// APIKey is the credential for the completion endpoint.
	APIKey string `mapstructure:"api_key"`
	// Model is the model identifier to request.
	Model string `mapstructure:"model"`
	// BaseURL is the endpoint root.
	BaseURL string `mapstructure:"base_url"`
	// MaxRetries bounds retries on transient transport failures.
	MaxRetries int `mapstructure:"max_retries"`
	// Timeout is the per-attempt request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnthropicConfig holds settings for the Anthropic provider backend.
type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
	// UseBedrock routes requests through AWS Bedrock.
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (OPENAI_API_KEY, OPENAI_MODEL, OPENAI_BASE_URL, ANTHROPIC_API_KEY)
// 2. Project config (.taskdown.json in current directory or a parent)
// 3. User config (~/.config/taskdown/config.json)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("remote.api_key", "OPENAI_API_KEY")
	v.BindEnv("remote.model", "OPENAI_MODEL")
	v.BindEnv("remote.base_url", "OPENAI_BASE_URL")
	v.BindEnv("remote.provider", "TASKDOWN_PROVIDER")
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references in credentials.
	cfg.Remote.APIKey = os.ExpandEnv(cfg.Remote.APIKey)
	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Remote.APIKey = os.ExpandEnv(cfg.Remote.APIKey)
	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			Provider:   "openai",
			Model:      "gpt-4o-mini",
			BaseURL:    "https://api.openai.com/v1",
			MaxRetries: 3,
			Timeout:    30 * time.Second,
		},
	}
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.json")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("remote.provider", "openai")
	v.SetDefault("remote.api_key", "")
	v.SetDefault("remote.model", "gpt-4o-mini")
	v.SetDefault("remote.base_url", "https://api.openai.com/v1")
	v.SetDefault("remote.max_retries", 3)
	v.SetDefault("remote.timeout", "30s")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")
	v.SetDefault("anthropic.use_bedrock", false)
	v.SetDefault("anthropic.aws_region", "")
	v.SetDefault("anthropic.aws_profile", "")
}

// getUserConfigDir returns the XDG config directory for taskdown.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "taskdown")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "taskdown")
	}
	return filepath.Join(home, ".config", "taskdown")
}

// findProjectConfig searches for .taskdown.json in the current directory
// and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".taskdown.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
