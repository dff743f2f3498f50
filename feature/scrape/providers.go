package scrape

import "fmt"

// Strategy selects the parsing protocol for a provider. The set is closed:
// every provider is either a list-markup site or a paginated JSON API, and
// the scrape service dispatches on the concrete type.
type Strategy interface {
	strategyKind() string
}

// ListMarkup is the strategy for HTML providers that render results as a
// flat list of row items.
type ListMarkup struct {
	// BaseURL builds the year-scoped base URL for the race edition.
	BaseURL func(year int) string
	// EventCode is the provider's event filter code (e.g. "MAR").
	EventCode string
}

func (ListMarkup) strategyKind() string { return "list-markup" }

// PaginatedAPI is the strategy for structured providers with a two-step
// protocol: resolve the year's competition id and result table from an event
// configuration endpoint, then page through a column-described search.
type PaginatedAPI struct {
	// ConfigURL is the event configuration endpoint.
	ConfigURL string
	// SearchURL is the paginated search endpoint.
	SearchURL string
	// EventID identifies the event on the configuration endpoint.
	EventID string
	// PageSize bounds each result page.
	PageSize int
}

func (PaginatedAPI) strategyKind() string { return "paginated-api" }

// Provider describes one supported race source.
type Provider struct {
	// Key is the race key used in requests (e.g. "chicago").
	Key string
	// SourceKey identifies the timing provider in stored records
	// (e.g. "mikatiming-chicago").
	SourceKey string
	// RaceName is the full display name of the race.
	RaceName string
	// Discipline is the discipline every result of this race belongs to.
	Discipline string
	// Years lists the editions the provider can serve, newest first.
	Years []int
	// Date returns the ISO race date of the given edition.
	Date func(year int) string
	// Strategy is the parsing protocol.
	Strategy Strategy
}

// RaceInfo is the public listing shape for a provider.
type RaceInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Years []int  `json:"years"`
}

// Registry is an explicit provider table constructed once at startup and
// passed into the scrape service. There is no ambient global registry, so
// tests can run against synthetic provider definitions.
type Registry struct {
	order     []string
	providers map[string]Provider
}

// NewRegistry builds a registry from the given providers, preserving order.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.order = append(r.order, p.Key)
		r.providers[p.Key] = p
	}
	return r
}

// Get looks up a provider by race key.
func (r *Registry) Get(key string) (Provider, bool) {
	p, ok := r.providers[key]
	return p, ok
}

// Keys returns the registered race keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// List returns the public race listing in registration order.
func (r *Registry) List() []RaceInfo {
	infos := make([]RaceInfo, 0, len(r.order))
	for _, key := range r.order {
		p := r.providers[key]
		infos = append(infos, RaceInfo{Key: p.Key, Label: p.RaceName, Years: p.Years})
	}
	return infos
}

// yearsDesc enumerates the years [from, to] newest first.
func yearsDesc(from, to int) []int {
	years := make([]int, 0, to-from+1)
	for y := to; y >= from; y-- {
		years = append(years, y)
	}
	return years
}

// DefaultRegistry returns the production provider table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Provider{
			Key:        "chicago",
			SourceKey:  "mikatiming-chicago",
			RaceName:   "Bank of America Chicago Marathon",
			Discipline: "Marathon",
			Years:      yearsDesc(2015, 2025),
			Date:       func(year int) string { return fmt.Sprintf("%d-10-12", year) },
			Strategy: ListMarkup{
				BaseURL: func(year int) string {
					// Recent editions moved off the mikatiming history host.
					if year >= 2025 {
						return fmt.Sprintf("https://results.chicagomarathon.com/%d/", year)
					}
					return fmt.Sprintf("https://chicago-history.r.mikatiming.com/%d/", year)
				},
				EventCode: "MAR",
			},
		},
		Provider{
			Key:        "boston",
			SourceKey:  "mikatiming-boston",
			RaceName:   "Boston Marathon",
			Discipline: "Marathon",
			Years:      yearsDesc(2018, 2025),
			Date:       func(year int) string { return fmt.Sprintf("%d-04-15", year) },
			Strategy: ListMarkup{
				BaseURL: func(year int) string {
					return fmt.Sprintf("https://boston.r.mikatiming.com/%d/", year)
				},
				EventCode: "MAR",
			},
		},
		Provider{
			Key:        "london",
			SourceKey:  "results-london",
			RaceName:   "TCS London Marathon",
			Discipline: "Marathon",
			Years:      []int{2025, 2024},
			Date:       func(year int) string { return fmt.Sprintf("%d-04-27", year) },
			Strategy: PaginatedAPI{
				ConfigURL: "https://results.tcslondonmarathon.com/api/event-config",
				SearchURL: "https://results.tcslondonmarathon.com/api/search",
				EventID:   "london-marathon",
				PageSize:  100,
			},
		},
	)
}
