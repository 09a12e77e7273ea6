package enrich

import "context"

// Provider sends a prompt to a language model and returns the raw text
// response. Used only by Enricher; not exported to the rest of the system.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
