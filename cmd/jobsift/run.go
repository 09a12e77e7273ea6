package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobsift/jobsift/internal/dedup"
	"github.com/jobsift/jobsift/internal/discovery"
	"github.com/jobsift/jobsift/internal/enrich"
	"github.com/jobsift/jobsift/internal/pipeline"
	"github.com/jobsift/jobsift/internal/session"
	"github.com/jobsift/jobsift/internal/store"
)

var inputPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one ingestion pass over discovered postings",
	Long:  "Streams postings from the discovery input, skips known links, classifies the rest, and appends accepted records to the store.",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "postings JSONL file (overrides discovery.input)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	input := cfg.Discovery.Input
	if inputPath != "" {
		input = inputPath
	}
	if input == "" {
		logger.Error("no posting input configured (set discovery.input or pass --input)")
		os.Exit(1)
	}

	logger.Info("config loaded",
		"role", cfg.Query.Role,
		"locations", cfg.Query.Locations,
		"time_window", cfg.Query.TimeWindow,
		"limit", cfg.Query.Limit,
		"provider", cfg.Enrichment.Provider,
		"model", cfg.Enrichment.Model,
	)

	if cookies, err := session.LoadCookies(cfg.Session.CookiePath); err != nil {
		logger.Warn("could not read saved session", "error", err)
	} else if cookies == nil {
		logger.Warn("no saved session; run `jobsift login` before the next crawl", "path", cfg.Session.CookiePath)
	} else {
		logger.Debug("session loaded", "cookies", len(cookies))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recStore, keys, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	defer recStore.Close()

	seen := dedup.NewSet(keys)
	logger.Info("record store opened", "path", cfg.Store.Path, "known_links", seen.Len())

	provider, err := buildProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to build enrichment provider", "error", err)
		os.Exit(1)
	}
	if cfg.Enrichment.MinInterval > 0 {
		provider = enrich.NewPacedProvider(provider, cfg.Enrichment.MinInterval)
	}
	enricher := enrich.NewEnricher(provider, enrich.MatchAssessmentTemplate, logger)

	ingestor := pipeline.NewIngestor(recStore, seen, enricher, cfg.Profile.ResumeKeywords, logger)

	if err := discovery.NewFileSource(input).Run(ctx, ingestor); err != nil {
		logger.Error("ingestion aborted", "error", err)
		os.Exit(1)
	}
	return nil
}
