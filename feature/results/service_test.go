package results

import (
	"context"
	"testing"
	"time"

	"head2head/core/athletics"
	"head2head/feature/results/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient is a canned canonical results service that counts fetches.
type stubClient struct {
	results []athletics.Result
	calls   int
	err     error
}

func (s *stubClient) Search(ctx context.Context, name string) ([]athletics.SearchResult, error) {
	return nil, nil
}

func (s *stubClient) Results(ctx context.Context, athleteID int) ([]athletics.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestCanonicalResults(t *testing.T) {
	ctx := context.Background()

	canned := []athletics.Result{
		{Competition: "Olympic Games", CompetitionID: 7153115, Date: "2024-08-06T00:00:00",
			Discipline: "1500 Metres", Mark: "3:27.65", Place: 1, Race: "F"},
	}

	t.Run("Fetches Then Serves From Cache", func(t *testing.T) {
		store := newTestStore(t)
		client := &stubClient{results: canned}
		svc := NewService(store, client, zap.NewNop())

		got, err := svc.CanonicalResults(ctx, 14201847, "Cole Hocker")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, client.calls)

		got, err = svc.CanonicalResults(ctx, 14201847, "Cole Hocker")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, client.calls, "second read must not hit the upstream")
	})

	t.Run("Refetches After Expiry", func(t *testing.T) {
		store := newTestStore(t)
		client := &stubClient{results: canned}
		svc := NewService(store, client, zap.NewNop())

		_, err := svc.CanonicalResults(ctx, 14201847, "Cole Hocker")
		require.NoError(t, err)
		require.Equal(t, 1, client.calls)

		store.now = func() time.Time { return time.Now().Add(CacheTTL + time.Minute) }
		_, err = svc.CanonicalResults(ctx, 14201847, "Cole Hocker")
		require.NoError(t, err)
		assert.Equal(t, 2, client.calls)
	})

	t.Run("Upstream Error Propagates", func(t *testing.T) {
		store := newTestStore(t)
		client := &stubClient{err: assert.AnError}
		svc := NewService(store, client, zap.NewNop())

		_, err := svc.CanonicalResults(ctx, 14201847, "Cole Hocker")
		assert.Error(t, err)
	})
}

func TestResultsFor(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	canned := []athletics.Result{
		{Competition: "Olympic Games", CompetitionID: 7153115, Date: "2024-08-06T00:00:00",
			Discipline: "1500 Metres", Mark: "3:27.65", Place: 1, Race: "F"},
	}
	client := &stubClient{results: canned}
	svc := NewService(store, client, zap.NewNop())

	// One scraped record stored under both the athlete's name and canonical
	// id; the two lookup paths must not duplicate it.
	waID := 14201847
	rec := models.ScrapedResult{
		AthleteName: "Cole Hocker",
		AthleteWaID: &waID,
		RaceName:    "Bank of America Chicago Marathon",
		RaceYear:    2024,
		RaceDate:    "2024-10-13",
		Discipline:  "Marathon",
		Source:      "mikatiming-chicago",
		Mark:        "02:09:57",
		Place:       12,
	}
	_, err := store.UpsertScraped(ctx, rec)
	require.NoError(t, err)

	merged, err := svc.ResultsFor(ctx, waID, "Cole", "Hocker")
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "Olympic Games", merged[0].Competition)
	assert.Equal(t, "Bank of America Chicago Marathon", merged[1].Competition)
	assert.Equal(t, "F", merged[1].Race)
}
