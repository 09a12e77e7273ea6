package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
profile:
  resume_keywords: "Go, Kubernetes, 5 years backend"
enrichment:
  model: gpt-4o
  api_key: sk-test
query:
  role: Software Engineer
  locations:
    - "Vancouver, BC, Canada"
  time_window: week
  relevance: relevant
`

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Profile.ResumeKeywords != "Go, Kubernetes, 5 years backend" {
		t.Errorf("ResumeKeywords = %q", cfg.Profile.ResumeKeywords)
	}
	if cfg.Enrichment.Provider != "openai" {
		t.Errorf("Provider = %q, want openai default", cfg.Enrichment.Provider)
	}
	if cfg.Enrichment.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q, want openai default", cfg.Enrichment.BaseURL)
	}
	if cfg.Enrichment.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s default", cfg.Enrichment.Timeout)
	}
	if cfg.Enrichment.MinInterval != 1*time.Second {
		t.Errorf("MinInterval = %v, want 1s default", cfg.Enrichment.MinInterval)
	}
	if cfg.Store.Path != "jobs.csv" {
		t.Errorf("Store.Path = %q, want jobs.csv default", cfg.Store.Path)
	}
	if cfg.Session.CookiePath != "linkedin_cookies.json" {
		t.Errorf("CookiePath = %q", cfg.Session.CookiePath)
	}
	if cfg.Query.Limit != 500 {
		t.Errorf("Limit = %d, want 500 default", cfg.Query.Limit)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_ENRICH_KEY", "sk-from-env")
	content := strings.Replace(validConfig, "api_key: sk-test", "api_key: ${TEST_ENRICH_KEY}", 1)

	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enrichment.APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want expanded env value", cfg.Enrichment.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "profile: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "missing resume keywords",
			mutate:  func(c string) string { return strings.Replace(c, `resume_keywords: "Go, Kubernetes, 5 years backend"`, `resume_keywords: ""`, 1) },
			wantErr: "resume_keywords",
		},
		{
			name:    "missing model",
			mutate:  func(c string) string { return strings.Replace(c, "model: gpt-4o", `model: ""`, 1) },
			wantErr: "enrichment.model",
		},
		{
			name:    "unknown provider",
			mutate:  func(c string) string { return strings.Replace(c, "enrichment:", "enrichment:\n  provider: llama-at-home", 1) },
			wantErr: "enrichment.provider",
		},
		{
			name:    "missing role",
			mutate:  func(c string) string { return strings.Replace(c, "role: Software Engineer", `role: ""`, 1) },
			wantErr: "query.role",
		},
		{
			name:    "bad timeout",
			mutate:  func(c string) string { return strings.Replace(c, "enrichment:", "enrichment:\n  timeout: soon", 1) },
			wantErr: "timeout",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.mutate(validConfig)))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestGeminiProviderHasNoDefaultBaseURL(t *testing.T) {
	content := strings.Replace(validConfig, "enrichment:", "enrichment:\n  provider: gemini", 1)

	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Enrichment.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (SDK default endpoint)", cfg.Enrichment.BaseURL)
	}
}
