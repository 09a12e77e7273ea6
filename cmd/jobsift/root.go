package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/enrich"
	"github.com/jobsift/jobsift/internal/secrets"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobsift",
	Short: "Job posting sieve — ingest, classify, record",
	Long:  "jobsift ingests discovered job postings, deduplicates them against the record store, classifies each new posting with an LLM, and appends the result to a CSV you can open anywhere.",
	// Default to `run` so that `jobsift` with no args starts an ingestion run.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSIFT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBSIFT_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBSIFT_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// buildProvider constructs the configured LLM provider. When the config
// omits the api key, the OS keyring is consulted.
func buildProvider(ctx context.Context, cfg *config.Config) (enrich.Provider, error) {
	apiKey := cfg.Enrichment.APIKey
	if apiKey == "" {
		key, err := secrets.GetAPIKey(cfg.Enrichment.Provider)
		if err != nil {
			return nil, err
		}
		apiKey = key
	}

	switch cfg.Enrichment.Provider {
	case "gemini":
		return enrich.NewGeminiProvider(ctx, apiKey, cfg.Enrichment.BaseURL, cfg.Enrichment.Model)
	default:
		httpClient := &http.Client{Timeout: cfg.Enrichment.Timeout}
		return enrich.NewOpenAIProvider(cfg.Enrichment.BaseURL, apiKey, cfg.Enrichment.Model, httpClient), nil
	}
}
