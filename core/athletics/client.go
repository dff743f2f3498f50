package athletics

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"head2head/core/webclient"
)

// Client defines the interface to the canonical results service.
type Client interface {
	// Search finds athletes by name, sorted by ascending distance score
	// (best match first).
	Search(ctx context.Context, name string) ([]SearchResult, error)
	// Results fetches all competition results for an athlete.
	Results(ctx context.Context, athleteID int) ([]Result, error)
}

// httpClient is the HTTP implementation of Client.
type httpClient struct {
	base string
	web  *webclient.Client
}

// NewClient creates a canonical results service client.
func NewClient(cfg Config, web *webclient.Client) Client {
	return &httpClient{base: cfg.BaseURL, web: web}
}

func (c *httpClient) Search(ctx context.Context, name string) ([]SearchResult, error) {
	u := fmt.Sprintf("%s/athletes/search?name=%s", c.base, url.QueryEscape(name))

	var results []SearchResult
	if err := c.web.GetJSON(ctx, u, &results); err != nil {
		return nil, fmt.Errorf("athlete search failed: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].LevenshteinDistance < results[j].LevenshteinDistance
	})
	return results, nil
}

func (c *httpClient) Results(ctx context.Context, athleteID int) ([]Result, error) {
	u := fmt.Sprintf("%s/athletes/%d/results", c.base, athleteID)

	var results []Result
	if err := c.web.GetJSON(ctx, u, &results); err != nil {
		return nil, fmt.Errorf("results fetch failed: %w", err)
	}
	return results, nil
}
