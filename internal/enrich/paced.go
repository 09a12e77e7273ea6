package enrich

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// PacedProvider is a decorator that enforces a minimum interval between
// calls before delegating to the wrapped Provider.
type PacedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewPacedProvider wraps a Provider so consecutive Complete calls are at
// least minInterval apart.
func NewPacedProvider(inner Provider, minInterval time.Duration) *PacedProvider {
	return &PacedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Complete waits for the limiter, then delegates.
func (p *PacedProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return p.inner.Complete(ctx, prompt)
}
