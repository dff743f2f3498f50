package results

import (
	"context"
	"testing"
	"time"

	"head2head/core/athletics"
	"head2head/core/database"
	"head2head/feature/results/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func scrapedFixture() models.ScrapedResult {
	return models.ScrapedResult{
		AthleteName: "Kelvin Kiptum",
		RaceName:    "Bank of America Chicago Marathon",
		RaceYear:    2023,
		RaceDate:    "2023-10-08",
		Discipline:  "Marathon",
		Source:      "mikatiming-chicago",
		Mark:        "02:00:35",
		Place:       1,
	}
}

func TestUpsertScraped(t *testing.T) {
	ctx := context.Background()

	t.Run("Insert Normalizes Name", func(t *testing.T) {
		store := newTestStore(t)

		saved, err := store.UpsertScraped(ctx, scrapedFixture())
		require.NoError(t, err)
		assert.Equal(t, "kelvin kiptum", saved.AthleteName)
		assert.NotZero(t, saved.ScrapedAt)
	})

	t.Run("Replaces Existing Record", func(t *testing.T) {
		store := newTestStore(t)

		first, err := store.UpsertScraped(ctx, scrapedFixture())
		require.NoError(t, err)

		updated := scrapedFixture()
		updated.Mark = "02:00:34"
		updated.Place = 2
		second, err := store.UpsertScraped(ctx, updated)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		recs, err := store.ScrapedByName(ctx, "Kelvin Kiptum")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "02:00:34", recs[0].Mark)
		assert.Equal(t, 2, recs[0].Place)
	})

	t.Run("Distinct Keys Coexist", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.UpsertScraped(ctx, scrapedFixture())
		require.NoError(t, err)

		otherYear := scrapedFixture()
		otherYear.RaceYear = 2022
		otherYear.RaceDate = "2022-10-09"
		_, err = store.UpsertScraped(ctx, otherYear)
		require.NoError(t, err)

		otherSource := scrapedFixture()
		otherSource.Source = "mikatiming-boston"
		_, err = store.UpsertScraped(ctx, otherSource)
		require.NoError(t, err)

		recs, err := store.ScrapedByName(ctx, "kelvin kiptum")
		require.NoError(t, err)
		assert.Len(t, recs, 3)
	})
}

func TestScrapedByWaID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	waID := 14208194
	linked := scrapedFixture()
	linked.AthleteWaID = &waID
	_, err := store.UpsertScraped(ctx, linked)
	require.NoError(t, err)

	unlinked := scrapedFixture()
	unlinked.AthleteName = "Someone Else"
	_, err = store.UpsertScraped(ctx, unlinked)
	require.NoError(t, err)

	recs, err := store.ScrapedByWaID(ctx, waID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "kelvin kiptum", recs[0].AthleteName)
}

func TestCachedCanonical(t *testing.T) {
	ctx := context.Background()

	sample := []athletics.Result{
		{Competition: "Olympic Games", Discipline: "1500 Metres", Date: "2024-08-06T00:00:00", Mark: "3:27.65", Place: 1},
	}

	t.Run("Miss When Absent", func(t *testing.T) {
		store := newTestStore(t)

		_, ok, err := store.CachedCanonical(ctx, 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Hit While Fresh", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.PutCachedCanonical(ctx, 42, "Cole Hocker", sample))

		got, ok, err := store.CachedCanonical(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "3:27.65", got[0].Mark)
	})

	t.Run("Miss After TTL", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.PutCachedCanonical(ctx, 42, "Cole Hocker", sample))

		store.now = func() time.Time { return time.Now().Add(CacheTTL + time.Minute) }
		_, ok, err := store.CachedCanonical(ctx, 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Overwrite Refreshes Snapshot", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.PutCachedCanonical(ctx, 42, "Cole Hocker", sample))
		require.NoError(t, store.PutCachedCanonical(ctx, 42, "Cole Hocker", nil))

		got, ok, err := store.CachedCanonical(ctx, 42)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, got)
	})
}
