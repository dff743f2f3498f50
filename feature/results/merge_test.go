package results

import (
	"testing"

	"head2head/core/athletics"
	"head2head/feature/results/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeScraped(t *testing.T) {
	a := models.ScrapedResult{ID: 1, AthleteName: "cole hocker"}
	b := models.ScrapedResult{ID: 2, AthleteName: "cole hocker"}

	got := DedupeScraped([]models.ScrapedResult{a, b}, []models.ScrapedResult{b, a})
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestMerge(t *testing.T) {
	canonical := []athletics.Result{
		{Competition: "Chicago Marathon", Discipline: "Marathon", Date: "2023-10-08T00:00:00", Mark: "2:00:35", Place: 1},
	}

	t.Run("No Scraped Records", func(t *testing.T) {
		got := Merge(canonical, nil)
		assert.Equal(t, canonical, got)
	})

	t.Run("Canonical Wins On Same Day", func(t *testing.T) {
		scraped := []models.ScrapedResult{
			{Discipline: "Marathon", RaceDate: "2023-10-08", RaceName: "Bank of America Chicago Marathon",
				Source: "mikatiming-chicago", RaceYear: 2023, Mark: "02:00:36", Place: 2},
		}

		got := Merge(canonical, scraped)
		require.Len(t, got, 1)
		assert.Equal(t, "2:00:35", got[0].Mark, "the canonical mark must survive")
	})

	t.Run("New Appearances Are Appended", func(t *testing.T) {
		scraped := []models.ScrapedResult{
			{Discipline: "Marathon", RaceDate: "2022-10-09", RaceName: "Bank of America Chicago Marathon",
				Source: "mikatiming-chicago", RaceYear: 2022, Mark: "02:04:24", Place: 3},
			// Duplicate day across sources: only the first survives.
			{Discipline: "Marathon", RaceDate: "2022-10-09", RaceName: "Chicago Marathon (mirror)",
				Source: "mirror", RaceYear: 2022, Mark: "02:04:25", Place: 4},
		}

		got := Merge(canonical, scraped)
		require.Len(t, got, 2)
		assert.Equal(t, "2:00:35", got[0].Mark)
		assert.Equal(t, "02:04:24", got[1].Mark)
		assert.Equal(t, "F", got[1].Race)
	})

	t.Run("Different Disciplines Share A Day", func(t *testing.T) {
		scraped := []models.ScrapedResult{
			{Discipline: "Half Marathon", RaceDate: "2023-10-08", RaceName: "Chicago Half",
				Source: "mikatiming-chicago", RaceYear: 2023, Mark: "01:01:00", Place: 5},
		}

		got := Merge(canonical, scraped)
		assert.Len(t, got, 2)
	})
}
