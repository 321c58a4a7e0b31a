package llm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	withProvider := func(provider string, mutate func(*Config)) Config {
		cfg := DefaultConfig()
		cfg.Provider = provider
		if mutate != nil {
			mutate(&cfg)
		}
		return cfg
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", withProvider("gemini", nil), true},
		{"gemini with key", withProvider("gemini", func(c *Config) { c.Gemini.APIKey = "k" }), false},
		{"anthropic without key", withProvider("anthropic", nil), true},
		{"anthropic with key", withProvider("anthropic", func(c *Config) { c.Anthropic.APIKey = "sk-test" }), false},
		{"openai without key", withProvider("openai", nil), true},
		{"openai with key", withProvider("openai", func(c *Config) { c.OpenAI.APIKey = "sk-test" }), false},
		{"openrouter without key", withProvider("openrouter", nil), true},
		{"mock needs no key", withProvider("mock", nil), false},
		{"unknown provider", withProvider("unknown", nil), true},
		{"zero retry attempts", withProvider("mock", func(c *Config) { c.Retry.MaxAttempts = 0 }), true},
		{"shrinking backoff", withProvider("mock", func(c *Config) { c.Retry.Multiplier = 0.5 }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-3-flash", cfg.Gemini.Model)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.Gemini.ImageModel)
	assert.Equal(t, "gemini-2.5-flash-preview-tts", cfg.Gemini.SpeechModel)
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
}

func TestConfigFromLookup(t *testing.T) {
	env := map[string]string{
		"MATHCOACH_PROVIDER":            "anthropic",
		"API_KEY":                       "fallback-key",
		"MATHCOACH_GEMINI_SPEECH_MODEL": "gemini-tts",
		"ANTHROPIC_API_KEY":             "sk-ant",
		"MATHCOACH_ANTHROPIC_MODEL":     "claude-sonnet",
	}
	cfg := configFromLookup(DefaultConfig(), func(k string) string { return env[k] })

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "fallback-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-tts", cfg.Gemini.SpeechModel)
	assert.Equal(t, "gemini-3-flash", cfg.Gemini.Model, "unset keys keep defaults")
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
}

func TestConfigFromLookup_KeyPrecedence(t *testing.T) {
	env := map[string]string{
		"MATHCOACH_GEMINI_API_KEY": "specific",
		"GEMINI_API_KEY":           "generic",
		"API_KEY":                  "fallback",
	}
	cfg := configFromLookup(DefaultConfig(), func(k string) string { return env[k] })
	assert.Equal(t, "specific", cfg.Gemini.APIKey)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider: openai
openai:
  api_key: sk-file
retry:
  max_attempts: 3
  initial_wait: 500ms
`), 0o600))

	cfg, err := LoadConfigFile(DefaultConfig(), path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-file", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialWait)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(DefaultConfig(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
