package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for jobsift. A config failure is fatal:
// the process aborts before any posting is processed.
type Config struct {
	Profile    ProfileConfig
	Enrichment EnrichmentConfig
	Query      QueryConfig
	Store      StoreConfig
	Session    SessionConfig
	Discovery  DiscoveryConfig
}

// ProfileConfig is the operator's side of the match: the resume summary fed
// to every enrichment call.
type ProfileConfig struct {
	ResumeKeywords string `yaml:"resume_keywords"`
}

// EnrichmentConfig controls the language-model collaborator.
type EnrichmentConfig struct {
	Provider    string        // "openai" or "gemini"
	BaseURL     string        // defaults per provider
	Model       string        // model identifier, e.g. "gpt-4o"
	APIKey      string        // expanded from env by Load; keyring fallback when empty
	Timeout     time.Duration // per-request timeout
	MinInterval time.Duration // minimum gap between enrichment calls
}

// QueryConfig describes what the discovery collaborator should search for.
// These values are handed to it verbatim; only Role is validated here.
type QueryConfig struct {
	Role       string   `yaml:"role"`
	Locations  []string `yaml:"locations"`
	TimeWindow string   `yaml:"time_window"` // e.g. "week"
	Relevance  string   `yaml:"relevance"`   // e.g. "relevant"
	Limit      int      `yaml:"limit"`
}

// StoreConfig locates the durable record store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig locates the persisted login session.
type SessionConfig struct {
	CookiePath string `yaml:"cookie_path"`
}

// DiscoveryConfig locates the posting input stream for the run command.
type DiscoveryConfig struct {
	Input string `yaml:"input"` // JSONL file, one posting per line
}

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultStorePath     = "jobs.csv"
	defaultCookiePath    = "linkedin_cookies.json"
	defaultQueryLimit    = 500
)

// rawConfig is used for YAML unmarshaling (snake_case fields and durations
// as strings).
type rawConfig struct {
	Profile    ProfileConfig       `yaml:"profile"`
	Enrichment rawEnrichmentConfig `yaml:"enrichment"`
	Query      QueryConfig         `yaml:"query"`
	Store      StoreConfig         `yaml:"store"`
	Session    SessionConfig       `yaml:"session"`
	Discovery  DiscoveryConfig     `yaml:"discovery"`
}

type rawEnrichmentConfig struct {
	Provider    string `yaml:"provider"`
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	APIKey      string `yaml:"api_key"`
	Timeout     string `yaml:"timeout"`
	MinInterval string `yaml:"min_interval"`
}

// Load reads and parses the YAML config file at path, applies defaults,
// validates, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	timeout := 30 * time.Second // default
	if raw.Enrichment.Timeout != "" {
		timeout, err = time.ParseDuration(raw.Enrichment.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse enrichment.timeout %q: %w", raw.Enrichment.Timeout, err)
		}
	}

	minInterval := 1 * time.Second // default
	if raw.Enrichment.MinInterval != "" {
		minInterval, err = time.ParseDuration(raw.Enrichment.MinInterval)
		if err != nil {
			return nil, fmt.Errorf("parse enrichment.min_interval %q: %w", raw.Enrichment.MinInterval, err)
		}
	}

	provider := raw.Enrichment.Provider
	if provider == "" {
		provider = "openai"
	}

	baseURL := raw.Enrichment.BaseURL
	if baseURL == "" && provider == "openai" {
		baseURL = defaultOpenAIBaseURL
	}

	cfg := &Config{
		Profile: raw.Profile,
		Enrichment: EnrichmentConfig{
			Provider:    provider,
			BaseURL:     baseURL,
			Model:       raw.Enrichment.Model,
			APIKey:      raw.Enrichment.APIKey,
			Timeout:     timeout,
			MinInterval: minInterval,
		},
		Query:     raw.Query,
		Store:     raw.Store,
		Session:   raw.Session,
		Discovery: raw.Discovery,
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath
	}
	if cfg.Session.CookiePath == "" {
		cfg.Session.CookiePath = defaultCookiePath
	}
	if cfg.Query.Limit == 0 {
		cfg.Query.Limit = defaultQueryLimit
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Profile.ResumeKeywords == "" {
		return fmt.Errorf("profile.resume_keywords is required")
	}

	switch cfg.Enrichment.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("enrichment.provider must be \"openai\" or \"gemini\", got %q", cfg.Enrichment.Provider)
	}
	if cfg.Enrichment.Model == "" {
		return fmt.Errorf("enrichment.model is required")
	}
	if cfg.Enrichment.Timeout <= 0 {
		return fmt.Errorf("enrichment.timeout must be positive, got %v", cfg.Enrichment.Timeout)
	}
	if cfg.Enrichment.MinInterval < 0 {
		return fmt.Errorf("enrichment.min_interval must not be negative, got %v", cfg.Enrichment.MinInterval)
	}

	if cfg.Query.Role == "" {
		return fmt.Errorf("query.role is required")
	}
	if cfg.Query.Limit < 0 {
		return fmt.Errorf("query.limit must not be negative, got %d", cfg.Query.Limit)
	}

	return nil
}
