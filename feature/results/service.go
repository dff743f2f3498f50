package results

import (
	"context"
	"fmt"

	"head2head/core/athletics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service assembles the full result set for one athlete: canonical results
// served through a 24h read-through cache, unioned with any scraped records
// persisted for the same athlete.
type Service struct {
	store  *Store
	client athletics.Client
	logger *zap.Logger

	// sf collapses concurrent canonical fetches for the same athlete within
	// this process. Cross-process duplicate fetches remain possible and are
	// benign: the cache write is an idempotent overwrite keyed by athlete id.
	sf singleflight.Group
}

// NewService creates a results service.
func NewService(store *Store, client athletics.Client, logger *zap.Logger) *Service {
	return &Service{store: store, client: client, logger: logger}
}

// CanonicalResults returns the canonical result set for an athlete,
// serving from the cache when a fresh snapshot exists and fetching
// upstream (then writing back) otherwise.
func (s *Service) CanonicalResults(ctx context.Context, athleteID int, athleteName string) ([]athletics.Result, error) {
	cached, ok, err := s.store.CachedCanonical(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if ok {
		return cached, nil
	}

	key := fmt.Sprintf("canonical:%d", athleteID)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		// Re-check after winning the flight; a concurrent caller may have
		// completed the fetch and write-back already.
		cached, ok, err := s.store.CachedCanonical(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		if ok {
			return cached, nil
		}

		fetched, err := s.client.Results(ctx, athleteID)
		if err != nil {
			return nil, err
		}

		if err := s.store.PutCachedCanonical(ctx, athleteID, athleteName, fetched); err != nil {
			return nil, err
		}

		s.logger.Info("Cached canonical results",
			zap.Int("athlete_id", athleteID),
			zap.Int("count", len(fetched)),
		)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]athletics.Result), nil
}

// ResultsFor returns the merged result set for an athlete: cached canonical
// results plus scraped records retrieved both by normalized name and by
// canonical id, deduplicated before merging.
func (s *Service) ResultsFor(ctx context.Context, athleteID int, firstName, lastName string) ([]athletics.Result, error) {
	canonical, err := s.CanonicalResults(ctx, athleteID, firstName+" "+lastName)
	if err != nil {
		return nil, err
	}

	byName, err := s.store.ScrapedByName(ctx, firstName+" "+lastName)
	if err != nil {
		return nil, err
	}
	byID, err := s.store.ScrapedByWaID(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	scraped := DedupeScraped(byName, byID)
	return Merge(canonical, scraped), nil
}
