package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Remote.Provider != "openai" {
		t.Errorf("expected default provider 'openai', got %q", cfg.Remote.Provider)
	}
	if cfg.Remote.Model != "gpt-4o-mini" {
		t.Errorf("expected default model 'gpt-4o-mini', got %q", cfg.Remote.Model)
	}
	if cfg.Remote.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("expected default base url, got %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.MaxRetries != 3 {
		t.Errorf("expected default max retries 3, got %d", cfg.Remote.MaxRetries)
	}
	if cfg.Remote.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Remote.Timeout)
	}
	if cfg.Remote.APIKey != "" {
		t.Errorf("expected no default api key, got %q", cfg.Remote.APIKey)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configContent := `{
  "remote": {
    "provider": "anthropic",
    "api_key": "file-key",
    "model": "some-model",
    "base_url": "https://proxy.example.test/v1",
    "max_retries": 5,
    "timeout": "45s"
  },
  "anthropic": {
    "api_key": "anthropic-key",
    "use_bedrock": true,
    "aws_region": "us-west-2"
  }
}`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}

	if cfg.Remote.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Remote.Provider)
	}
	if cfg.Remote.APIKey != "file-key" {
		t.Errorf("api key = %q, want file-key", cfg.Remote.APIKey)
	}
	if cfg.Remote.MaxRetries != 5 {
		t.Errorf("max retries = %d, want 5", cfg.Remote.MaxRetries)
	}
	if cfg.Remote.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", cfg.Remote.Timeout)
	}
	if cfg.Anthropic.APIKey != "anthropic-key" {
		t.Errorf("anthropic key = %q, want anthropic-key", cfg.Anthropic.APIKey)
	}
	if !cfg.Anthropic.UseBedrock {
		t.Error("expected use_bedrock true")
	}
	if cfg.Anthropic.AWSRegion != "us-west-2" {
		t.Errorf("aws region = %q, want us-west-2", cfg.Anthropic.AWSRegion)
	}
}

// Values missing from the file fall back to defaults.
func TestLoadFromPathPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"remote": {"api_key": "only-key"}}`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}

	if cfg.Remote.APIKey != "only-key" {
		t.Errorf("api key = %q, want only-key", cfg.Remote.APIKey)
	}
	if cfg.Remote.Provider != "openai" {
		t.Errorf("provider = %q, want default openai", cfg.Remote.Provider)
	}
	if cfg.Remote.MaxRetries != 3 {
		t.Errorf("max retries = %d, want default 3", cfg.Remote.MaxRetries)
	}
}

func TestLoadFromPathExpandsEnvRefs(t *testing.T) {
	t.Setenv("TASKDOWN_TEST_KEY", "expanded-secret")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{"remote": {"api_key": "${TASKDOWN_TEST_KEY}"}}`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}
	if cfg.Remote.APIKey != "expanded-secret" {
		t.Errorf("api key = %q, want expanded-secret", cfg.Remote.APIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_MODEL", "env-model")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // isolate from real user config

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Remote.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.Remote.APIKey)
	}
	if cfg.Remote.Model != "env-model" {
		t.Errorf("model = %q, want env-model", cfg.Remote.Model)
	}
}
