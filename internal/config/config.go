package config

import (
	"os"
	"time"

	"contentgate/internal/asset"
	"contentgate/internal/fatigue"
	"contentgate/internal/regen"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Quality struct {
		Threshold        float64 `yaml:"threshold"`
		WeakDimensionBar float64 `yaml:"weak_dimension_bar"`
	} `yaml:"quality"`
	Regeneration struct {
		MaxAttempts             int `yaml:"max_attempts"`
		Concurrency             int `yaml:"concurrency"`
		RunDeadlineSeconds      int `yaml:"run_deadline_seconds"`
		GeneratorTimeoutSeconds int `yaml:"generator_timeout_seconds"`
	} `yaml:"regeneration"`
	Fatigue fatigue.Config `yaml:"fatigue"`
	Corpus  struct {
		WindowDays int    `yaml:"window_days"`
		DBPath     string `yaml:"db_path"`
	} `yaml:"corpus"`
	LLM struct {
		Provider string `yaml:"provider"` // gemini | openai | mock
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"llm"`
	Fallback struct {
		TemplatePath string `yaml:"template_path"`
	} `yaml:"fallback"`
	Advisors []asset.AdvisorProfile `yaml:"advisors"`
}

// LoadConfig reads contentgate.yaml plus a local .env, with environment
// variables taking precedence. A missing config file yields defaults.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 2. Override with environment variables if present
	if apiKey := os.Getenv("CONTENTGATE_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("CONTENTGATE_LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Quality.Threshold <= 0 {
		c.Quality.Threshold = 0.90
	}
	if c.Quality.WeakDimensionBar <= 0 {
		c.Quality.WeakDimensionBar = 0.80
	}
	if c.Regeneration.MaxAttempts <= 0 {
		c.Regeneration.MaxAttempts = 2
	}
	if c.Regeneration.Concurrency <= 0 {
		c.Regeneration.Concurrency = 4
	}
	if c.Regeneration.RunDeadlineSeconds <= 0 {
		c.Regeneration.RunDeadlineSeconds = 600
	}
	if c.Regeneration.GeneratorTimeoutSeconds <= 0 {
		c.Regeneration.GeneratorTimeoutSeconds = 90
	}
	if c.Corpus.WindowDays <= 0 {
		c.Corpus.WindowDays = 30
	}
	if c.Corpus.DBPath == "" {
		c.Corpus.DBPath = "contentgate.db"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "mock"
	}
}

// ControllerConfig maps configuration onto the regeneration controller.
func (c *Config) ControllerConfig() regen.Config {
	return regen.Config{
		QualityThreshold: c.Quality.Threshold,
		WeakDimensionBar: c.Quality.WeakDimensionBar,
		MaxAttempts:      c.Regeneration.MaxAttempts,
	}
}

// GeneratorTimeout returns the per-call timeout for generator requests.
func (c *Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Regeneration.GeneratorTimeoutSeconds) * time.Second
}

// RunDeadline returns the whole-batch deadline.
func (c *Config) RunDeadline() time.Duration {
	return time.Duration(c.Regeneration.RunDeadlineSeconds) * time.Second
}

// ProfileMap indexes advisor profiles by id.
func (c *Config) ProfileMap() map[string]asset.AdvisorProfile {
	out := make(map[string]asset.AdvisorProfile, len(c.Advisors))
	for _, p := range c.Advisors {
		out[p.AdvisorID] = p
	}
	return out
}
