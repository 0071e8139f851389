// Package service ties the dataset store to the synonym lexicon and records
// metrics around every lookup.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/couchcryptid/water-quality-api/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Service answers dataset and chatbot queries.
type Service struct {
	store   *domain.Store
	lexicon *observedLexicon
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used to time lexicon lookups.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// New creates a Service. backend labels lexicon metrics; lexicon may be nil,
// in which case chatbot queries fail with domain.ErrLexiconUnavailable.
func New(store *domain.Store, lexicon domain.Lexicon, backend string, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		logger:  logger,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if lexicon != nil {
		s.lexicon = newObservedLexicon(lexicon, backend, metrics, s.clock)
	}
	metrics.DatasetRecords.Set(float64(store.Len()))
	return s
}

// All returns every measurement, or domain.ErrEmptyDataset.
func (s *Service) All() ([]domain.Measurement, error) {
	return s.store.All()
}

// ByID returns the measurement with the given id.
func (s *Service) ByID(id string) (domain.Measurement, bool) {
	return s.store.ByID(id)
}

// ByLabel returns measurements whose safety label contains label.
func (s *Service) ByLabel(label string) []domain.Measurement {
	return s.store.ByLabel(label)
}

// Chat tokenizes the query, expands it through the lexicon, and returns the
// matching measurements with a status line.
func (s *Service) Chat(ctx context.Context, query string) (domain.ChatResponse, error) {
	if s.lexicon == nil {
		s.metrics.ChatbotQueries.WithLabelValues("error").Inc()
		return domain.ChatResponse{}, errors.Join(domain.ErrLexiconUnavailable, errors.New("no lexicon configured"))
	}

	tokens := domain.Tokenize(query)
	terms, err := domain.Expand(ctx, s.lexicon, tokens)
	if err != nil {
		s.metrics.ChatbotQueries.WithLabelValues("error").Inc()
		return domain.ChatResponse{}, err
	}

	resp := domain.NewChatResponse(s.store.Search(terms))

	outcome := "found"
	if len(resp.Mediciones) == 0 {
		outcome = "not_found"
	}
	s.metrics.ChatbotQueries.WithLabelValues(outcome).Inc()
	s.logger.Debug("chatbot query",
		"tokens", tokens,
		"terms", terms.Sorted(),
		"matches", len(resp.Mediciones),
	)
	return resp, nil
}

// CheckReadiness reports whether the synonym lexicon can serve lookups.
func (s *Service) CheckReadiness(ctx context.Context) error {
	if s.lexicon == nil {
		return errors.New("no lexicon configured")
	}
	return s.lexicon.ping(ctx)
}
