package service

import (
	"context"

	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/couchcryptid/water-quality-api/internal/observability"
	"github.com/jonboulle/clockwork"
)

// observedLexicon wraps a Lexicon with lookup counters and latency.
type observedLexicon struct {
	inner   domain.Lexicon
	backend string
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func newObservedLexicon(inner domain.Lexicon, backend string, metrics *observability.Metrics, clock clockwork.Clock) *observedLexicon {
	return &observedLexicon{inner: inner, backend: backend, metrics: metrics, clock: clock}
}

func (o *observedLexicon) Synonyms(ctx context.Context, word string) ([]string, error) {
	start := o.clock.Now()
	synonyms, err := o.inner.Synonyms(ctx, word)
	o.metrics.LexiconDuration.WithLabelValues(o.backend).Observe(o.clock.Since(start).Seconds())

	switch {
	case err != nil:
		o.metrics.LexiconLookups.WithLabelValues(o.backend, "error").Inc()
	case len(synonyms) == 0:
		o.metrics.LexiconLookups.WithLabelValues(o.backend, "empty").Inc()
	default:
		o.metrics.LexiconLookups.WithLabelValues(o.backend, "success").Inc()
	}
	return synonyms, err
}

// ping delegates to the wrapped lexicon when it can check its backing store.
// Lexicons without a Pinger are assumed reachable.
func (o *observedLexicon) ping(ctx context.Context) error {
	if p, ok := o.inner.(domain.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
