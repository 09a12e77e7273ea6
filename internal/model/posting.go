package model

import "context"

// Posting is one job listing surfaced by the discovery collaborator.
// It is transient: consumed exactly once by the ingestion pipeline.
type Posting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Date        string `json:"date"`        // raw source date; may be empty or the literal "None"
	Description string `json:"description"` // free-form text, input to enrichment
	Link        string `json:"link"`        // raw URL, may carry tracking noise
}

// EnrichmentResult is the structured assessment produced for a single Posting.
type EnrichmentResult struct {
	Match    string   // "Yes" or "No"
	Keywords []string // up to 5 tokens, source order preserved
	YearsExp string   // e.g. "1-3 years", or "NA"
	Salary   string   // e.g. "100,000-150,000", or "NA"
}

// Record is the persisted, immutable form of one accepted Posting.
// Link holds the canonical identity and is the deduplication key.
type Record struct {
	Title    string
	Company  string
	Date     string
	Location string
	Link     string
	Match    string
	Keywords []string
	YearsExp string
	Salary   string
}

// RecordStore appends enriched records to durable storage.
type RecordStore interface {
	Append(rec Record) error
}

// SeenSet tracks which canonical identities have already been persisted.
type SeenSet interface {
	Contains(key string) bool
	Add(key string)
}

// Enricher derives a structured match assessment from posting text and the
// operator's profile description.
type Enricher interface {
	Classify(ctx context.Context, description, profile string) (EnrichmentResult, error)
}
