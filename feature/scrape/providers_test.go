package scrape_test

import (
	"testing"

	"head2head/feature/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := scrape.DefaultRegistry()
	assert.Equal(t, []string{"chicago", "boston", "london"}, reg.Keys())

	t.Run("Chicago Host Moves In 2025", func(t *testing.T) {
		p, ok := reg.Get("chicago")
		require.True(t, ok)

		st, ok := p.Strategy.(scrape.ListMarkup)
		require.True(t, ok)
		assert.Contains(t, st.BaseURL(2024), "chicago-history.r.mikatiming.com/2024")
		assert.Contains(t, st.BaseURL(2025), "results.chicagomarathon.com/2025")
	})

	t.Run("Years Are Newest First", func(t *testing.T) {
		p, ok := reg.Get("boston")
		require.True(t, ok)
		require.NotEmpty(t, p.Years)
		assert.Equal(t, 2025, p.Years[0])
		assert.Equal(t, 2018, p.Years[len(p.Years)-1])
	})

	t.Run("London Uses The Paginated API", func(t *testing.T) {
		p, ok := reg.Get("london")
		require.True(t, ok)
		_, ok = p.Strategy.(scrape.PaginatedAPI)
		assert.True(t, ok)
		assert.Equal(t, "2025-04-27", p.Date(2025))
	})

	t.Run("Listing Preserves Order", func(t *testing.T) {
		infos := reg.List()
		require.Len(t, infos, 3)
		assert.Equal(t, "chicago", infos[0].Key)
		assert.Equal(t, "Bank of America Chicago Marathon", infos[0].Label)
	})
}
