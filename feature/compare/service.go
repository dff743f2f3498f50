package compare

import (
	"context"

	"head2head/core/athletics"
	"head2head/feature/results"

	"go.uber.org/zap"
)

// AthleteRef identifies one side of a comparison. The names feed the
// scraped-record lookup, which is keyed by normalized display name.
type AthleteRef struct {
	ID        int
	FirstName string
	LastName  string
}

// Service computes head-to-head records between two athletes.
type Service struct {
	results   *results.Service
	athletics athletics.Client
	logger    *zap.Logger
}

// NewService creates a compare service.
func NewService(res *results.Service, client athletics.Client, logger *zap.Logger) *Service {
	return &Service{results: res, athletics: client, logger: logger}
}

// SearchAthletes proxies the canonical athlete search.
func (s *Service) SearchAthletes(ctx context.Context, name string) ([]athletics.SearchResult, error) {
	return s.athletics.Search(ctx, name)
}

// Compare fetches both athletes' merged result sets and builds the
// head-to-head record, optionally restricted to one discipline.
func (s *Service) Compare(ctx context.Context, a, b AthleteRef, discipline string) (Record, error) {
	resultsA, err := s.results.ResultsFor(ctx, a.ID, a.FirstName, a.LastName)
	if err != nil {
		return Record{}, err
	}
	resultsB, err := s.results.ResultsFor(ctx, b.ID, b.FirstName, b.LastName)
	if err != nil {
		return Record{}, err
	}

	rec := Build(resultsA, resultsB)
	if discipline != "" {
		rec = FilterByDiscipline(rec, discipline)
	}

	s.logger.Debug("Built head-to-head record",
		zap.Int("athlete_a", a.ID),
		zap.Int("athlete_b", b.ID),
		zap.Int("total", rec.Total),
	)
	return rec, nil
}
