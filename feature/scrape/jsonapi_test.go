package scrape_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"head2head/core/webclient"
	"head2head/feature/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const eventConfigFixture = `{
	"eventId": "test-marathon",
	"editions": [
		{"year": 2024, "competitionId": 777, "table": "results_2024"},
		{"year": 2025, "competitionId": 888, "table": "results_2025"}
	]
}`

// newAPIProvider serves the two-step JSON protocol from an httptest server:
// an event configuration endpoint plus a paginated, column-described search.
func newAPIProvider(t *testing.T) *scrape.Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/event-config", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-marathon", r.URL.Query().Get("event"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventConfigFixture))
	})
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "777", q.Get("event"))
		assert.Equal(t, "results_2024", q.Get("table"))
		assert.Equal(t, "Doe", q.Get("filters[lastname]"))

		w.Header().Set("Content-Type", "application/json")
		switch q.Get("page") {
		case "0":
			// A full page: the second row is a DNF and must be skipped, but
			// it still counts toward the page size.
			_, _ = w.Write([]byte(`{
				"columns": ["name", "country", "place", "gender_place", "bib", "division", "finish_time"],
				"rows": [
					["Doe, Jane", "USA", 47, 12, "40188", "W30", "02:30:15"],
					["Doe, Jim", "USA", 0, 0, "40189", "M35", "–"]
				]
			}`))
		default:
			_, _ = w.Write([]byte(`{
				"columns": ["name", "country", "place", "gender_place", "bib", "division", "finish_time"],
				"rows": [
					["Doe, Alexandra", "GBR", 48, 13, "40190", "W35", "02:31:00"]
				]
			}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	provider := scrape.Provider{
		Key:        "apirace",
		SourceKey:  "results-api",
		RaceName:   "API City Marathon",
		Discipline: "Marathon",
		Years:      []int{2025, 2024},
		Date:       func(year int) string { return fmt.Sprintf("%d-04-27", year) },
		Strategy: scrape.PaginatedAPI{
			ConfigURL: srv.URL + "/api/event-config",
			SearchURL: srv.URL + "/api/search",
			EventID:   "test-marathon",
			PageSize:  2,
		},
	}

	store := newTestStore(t)
	return scrape.NewService(scrape.NewRegistry(provider), webclient.New(webclient.Config{TimeoutSeconds: 5}), store, zap.NewNop())
}

func TestScrapePaginatedAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("Pages Through Search Results", func(t *testing.T) {
		svc := newAPIProvider(t)

		outcome, err := svc.Scrape(ctx, scrape.Request{
			FirstName: "Alexandra",
			LastName:  "Doe",
			RaceKey:   "apirace",
			RaceYear:  2024,
		})
		require.NoError(t, err)
		require.True(t, outcome.Found, "the match sits on the second page")
		assert.Equal(t, "alexandra doe", outcome.Result.AthleteName)
		assert.Equal(t, "02:31:00", outcome.Result.Mark)
		assert.Equal(t, 48, outcome.Result.Place)
	})

	t.Run("Maps Columns By Name", func(t *testing.T) {
		svc := newAPIProvider(t)

		outcome, err := svc.Scrape(ctx, scrape.Request{
			FirstName: "Jane",
			LastName:  "Doe",
			RaceKey:   "apirace",
			RaceYear:  2024,
		})
		require.NoError(t, err)
		require.True(t, outcome.Found)
		require.NotNil(t, outcome.Result.Bib)
		assert.Equal(t, "40188", *outcome.Result.Bib)
		require.NotNil(t, outcome.Result.PlaceGender)
		assert.Equal(t, 12, *outcome.Result.PlaceGender)
	})

	t.Run("DNF Rows Never Match", func(t *testing.T) {
		svc := newAPIProvider(t)

		outcome, err := svc.Scrape(ctx, scrape.Request{
			FirstName: "Jim",
			LastName:  "Doe",
			RaceKey:   "apirace",
			RaceYear:  2024,
		})
		require.NoError(t, err)
		assert.False(t, outcome.Found)
	})

	t.Run("Missing Edition Lists Years", func(t *testing.T) {
		svc := newAPIProvider(t)

		_, err := svc.Scrape(ctx, scrape.Request{
			FirstName: "Jane",
			LastName:  "Doe",
			RaceKey:   "apirace",
			RaceYear:  1999,
		})
		require.Error(t, err)

		var cfgErr *scrape.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, []string{"2024", "2025"}, cfgErr.Options)
		assert.Contains(t, cfgErr.Error(), "no API City Marathon edition for 1999")
	})
}
