package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects the backend for structured solving.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock".
	// Illustrations and narration always use Gemini.
	Provider string `yaml:"provider" validate:"oneof=gemini openai anthropic openrouter mock"`

	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey      string `yaml:"api_key"`
	Model       string `yaml:"model"`        // Default: "gemini-3-flash"
	ImageModel  string `yaml:"image_model"`  // Default: "gemini-2.5-flash-image"
	SpeechModel string `yaml:"speech_model"` // Default: "gemini-2.5-flash-preview-tts"
	BaseURL     string `yaml:"base_url"`     // Optional endpoint override.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `yaml:"base_url"` // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "claude-haiku"
	BaseURL string `yaml:"base_url"` // Optional endpoint override.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `yaml:"base_url"` // Default: "https://openrouter.ai/api/v1"

	// AppName and SiteURL are sent as OpenRouter attribution headers.
	AppName string `yaml:"app_name"` // Default: "mathcoach"
	SiteURL string `yaml:"site_url"`
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" validate:"gte=1"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier" validate:"gte=1"`
}

// DefaultConfig returns a Config with defaults. A failed remote call is
// not retried unless Retry.MaxAttempts is raised.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model:       "gemini-3-flash",
			ImageModel:  "gemini-2.5-flash-image",
			SpeechModel: "gemini-2.5-flash-preview-tts",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model:   "google/gemini-2.5-flash",
			AppName: "mathcoach",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// LoadConfigFile overlays the YAML file at path on top of cfg.
func LoadConfigFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv overlays environment variables on top of cfg.
func ConfigFromEnv(cfg Config) Config {
	return configFromLookup(cfg, os.Getenv)
}

func configFromLookup(cfg Config, getenv func(string) string) Config {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}

	set(&cfg.Provider, "MATHCOACH_PROVIDER")

	set(&cfg.Gemini.APIKey, "MATHCOACH_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY")
	set(&cfg.Gemini.Model, "MATHCOACH_GEMINI_MODEL")
	set(&cfg.Gemini.ImageModel, "MATHCOACH_GEMINI_IMAGE_MODEL")
	set(&cfg.Gemini.SpeechModel, "MATHCOACH_GEMINI_SPEECH_MODEL")
	set(&cfg.Gemini.BaseURL, "MATHCOACH_GEMINI_BASE_URL")

	set(&cfg.OpenAI.APIKey, "MATHCOACH_OPENAI_API_KEY", "OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "MATHCOACH_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "MATHCOACH_OPENAI_BASE_URL")

	set(&cfg.Anthropic.APIKey, "MATHCOACH_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "MATHCOACH_ANTHROPIC_MODEL")
	set(&cfg.Anthropic.BaseURL, "MATHCOACH_ANTHROPIC_BASE_URL")

	set(&cfg.OpenRouter.APIKey, "MATHCOACH_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "MATHCOACH_OPENROUTER_MODEL")
	set(&cfg.OpenRouter.SiteURL, "MATHCOACH_OPENROUTER_SITE_URL")

	return cfg
}

var validate = validator.New()

// Validate checks field ranges and that the selected provider has its API
// key set.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MATHCOACH_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MATHCOACH_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("MATHCOACH_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	}
	return nil
}
