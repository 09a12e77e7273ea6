// Package enrich sends posting text to an external language model and turns
// the response into a structured match assessment.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/jobsift/jobsift/internal/model"
)

// maxKeywords caps the keyword list; the prompt asks for 5 but the model is
// not always obedient.
const maxKeywords = 5

// Enricher implements model.Enricher on top of an LLM provider.
type Enricher struct {
	provider Provider
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewEnricher creates an enricher that classifies postings via the given
// provider. A nil logger disables logging.
func NewEnricher(provider Provider, tmpl *template.Template, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Enricher{
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// Classify sends description plus the operator's profile text to the model
// and decodes the structured answer. Calls are at-most-once: no retry, no
// backoff. Failures come back as *ServiceError (call failed) or *ParseError
// (answer not well-formed).
func (e *Enricher) Classify(ctx context.Context, description, profile string) (model.EnrichmentResult, error) {
	var promptBuf bytes.Buffer
	err := e.tmpl.Execute(&promptBuf, struct{ Description, Profile string }{
		Description: description,
		Profile:     profile,
	})
	if err != nil {
		return model.EnrichmentResult{}, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := e.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return model.EnrichmentResult{}, &ServiceError{Err: err}
	}

	result, err := parseResult(raw)
	if err != nil {
		e.logger.Debug("unparseable assessment", "error", err, "raw", raw)
		return model.EnrichmentResult{}, &ParseError{Raw: raw, Err: err}
	}
	return result, nil
}

// rawResult is the JSON shape the prompt requests. The two spaced keys are
// part of the wire contract with the model.
type rawResult struct {
	Match    string   `json:"match"`
	Keywords []string `json:"keywords"`
	YearsExp string   `json:"years of experience"`
	Salary   string   `json:"salary"`
}

func parseResult(raw string) (model.EnrichmentResult, error) {
	var rr rawResult
	if err := json.Unmarshal([]byte(raw), &rr); err != nil {
		return model.EnrichmentResult{}, fmt.Errorf("unmarshal assessment JSON: %w", err)
	}

	if rr.Match != "Yes" && rr.Match != "No" {
		return model.EnrichmentResult{}, fmt.Errorf("match must be Yes or No, got %q", rr.Match)
	}

	if len(rr.Keywords) > maxKeywords {
		rr.Keywords = rr.Keywords[:maxKeywords]
	}
	if rr.YearsExp == "" {
		rr.YearsExp = "NA"
	}
	if rr.Salary == "" {
		rr.Salary = "NA"
	}

	return model.EnrichmentResult{
		Match:    rr.Match,
		Keywords: rr.Keywords,
		YearsExp: rr.YearsExp,
		Salary:   rr.Salary,
	}, nil
}
