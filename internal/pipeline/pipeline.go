// Package pipeline is the single point of decision-making: it receives one
// posting event at a time, canonicalizes it, consults the dedup set, enriches
// on a miss, and appends a record on success.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jobsift/jobsift/internal/canonical"
	"github.com/jobsift/jobsift/internal/discovery"
	"github.com/jobsift/jobsift/internal/model"
)

// noisePhrase shows up appended to titles on the source job board.
const noisePhrase = "with verification"

// Ensure Ingestor implements discovery.Listener.
var _ discovery.Listener = (*Ingestor)(nil)

// Ingestor owns the full ingestion pipeline for one run:
// canonicalize → dedup check → enrich → append → mark seen.
type Ingestor struct {
	store    model.RecordStore
	seen     model.SeenSet
	enricher model.Enricher
	profile  string
	logger   *slog.Logger
	now      func() time.Time

	persisted int
	skipped   int
	failed    int
}

// NewIngestor creates a pipeline wired with all its dependencies. profile is
// the operator's resume-keyword text fed to every enrichment call.
func NewIngestor(store model.RecordStore, seen model.SeenSet, enricher model.Enricher, profile string, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		store:    store,
		seen:     seen,
		enricher: enricher,
		profile:  profile,
		logger:   logger,
		now:      time.Now,
	}
}

// OnData runs one posting through the state machine. Duplicates and
// enrichment failures are absorbed (logged, stream continues); only a failed
// durable append returns an error, because after that the run must not go on.
func (in *Ingestor) OnData(ctx context.Context, p model.Posting) error {
	key := canonical.Canonicalize(p.Link)

	if in.seen.Contains(key) {
		in.skipped++
		in.logger.Info("skipping duplicate posting", "link", key)
		return nil
	}

	result, err := in.enricher.Classify(ctx, p.Description, in.profile)
	if err != nil {
		// Not persisted and not marked seen, so the posting stays
		// eligible for a future run.
		in.failed++
		in.logger.Error("enrichment failed", "title", p.Title, "link", key, "error", err)
		return nil
	}

	rec := in.buildRecord(p, key, result)
	if err := in.store.Append(rec); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	// Mark seen strictly after the append. A crash between the two is safe:
	// the next startup reloads the key from the store.
	in.seen.Add(key)
	in.persisted++

	in.logger.Info("persisted posting",
		"title", rec.Title,
		"company", rec.Company,
		"match", rec.Match,
		"link", key,
	)
	return nil
}

// OnMetrics logs the per-batch counters. Informational only.
func (in *Ingestor) OnMetrics(m discovery.Metrics) {
	in.logger.Info("discovery metrics",
		"processed", m.Processed,
		"failed", m.Failed,
		"skipped", m.Skipped,
	)
}

// OnError logs a discovery-level error. Individual posting events are
// unaffected and the stream continues.
func (in *Ingestor) OnError(err error) {
	in.logger.Error("discovery error", "error", err)
}

// OnEnd marks pipeline completion; no further events are expected.
func (in *Ingestor) OnEnd() {
	in.logger.Info("discovery complete",
		"persisted", in.persisted,
		"skipped", in.skipped,
		"failed", in.failed,
	)
}

func (in *Ingestor) buildRecord(p model.Posting, key string, result model.EnrichmentResult) model.Record {
	date := p.Date
	if date == "" || date == "None" {
		date = in.now().Format("2006-01-02")
	}

	return model.Record{
		Title:    sanitizeTitle(p.Title),
		Company:  p.Company,
		Date:     date,
		Location: p.Location,
		Link:     key,
		Match:    result.Match,
		Keywords: result.Keywords,
		YearsExp: result.YearsExp,
		Salary:   result.Salary,
	}
}

// sanitizeTitle strips quote characters and the job board's verification
// badge text.
func sanitizeTitle(title string) string {
	title = strings.ReplaceAll(title, `"`, "")
	return strings.ReplaceAll(title, noisePhrase, "")
}
