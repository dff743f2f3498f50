package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"head2head/core/webclient"
	"head2head/feature/results"
	"head2head/feature/results/models"

	"go.uber.org/zap"
)

// Request asks for one athlete's result at one race edition.
type Request struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// WaID links the stored record to the canonical athlete id when known.
	WaID     *int   `json:"waId,omitempty"`
	RaceKey  string `json:"raceKey"`
	RaceYear int    `json:"raceYear"`
}

// Outcome is the result of a scrape. A missing match is a normal outcome,
// not an error: Message explains it and Candidates lists printed names seen
// in the provider response to aid manual correction.
type Outcome struct {
	Found      bool                  `json:"found"`
	Result     *models.ScrapedResult `json:"result,omitempty"`
	Message    string                `json:"message,omitempty"`
	Candidates []string              `json:"candidates,omitempty"`
}

// Service scrapes race-timing providers and persists matched results.
type Service struct {
	registry *Registry
	web      *webclient.Client
	store    *results.Store
	logger   *zap.Logger
}

// NewService creates a scrape service over an explicit provider registry.
func NewService(registry *Registry, web *webclient.Client, store *results.Store, logger *zap.Logger) *Service {
	return &Service{registry: registry, web: web, store: store, logger: logger}
}

// Registry exposes the provider table for listing endpoints.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Scrape fetches the provider's results for the requested race edition,
// matches the target athlete by printed name, and upserts the match into
// the scraped-result store.
func (s *Service) Scrape(ctx context.Context, req Request) (*Outcome, error) {
	p, ok := s.registry.Get(req.RaceKey)
	if !ok {
		return nil, errUnknownRace(req.RaceKey, s.registry.Keys())
	}

	var (
		parsed []ParsedRecord
		err    error
	)
	switch st := p.Strategy.(type) {
	case ListMarkup:
		var markup string
		markup, err = s.web.GetText(ctx, listMarkupURL(st, req))
		if err == nil {
			parsed = ParseListMarkup(markup)
		}
	case PaginatedAPI:
		parsed, err = parsePaginatedAPI(ctx, s.web, p, st, req.LastName, req.RaceYear)
	default:
		err = fmt.Errorf("unsupported provider strategy for race %s", p.Key)
	}
	if err != nil {
		return nil, err
	}

	match, candidates := MatchRecord(parsed, req.FirstName, req.LastName)
	if match == nil {
		return &Outcome{
			Found: false,
			Message: fmt.Sprintf("No result found for %s %s at %s %d. Found %d results for similar names.",
				req.FirstName, req.LastName, p.RaceName, req.RaceYear, len(parsed)),
			Candidates: candidates,
		}, nil
	}

	rec := models.ScrapedResult{
		AthleteName: storedName(match.Name),
		AthleteWaID: req.WaID,
		RaceName:    p.RaceName,
		RaceYear:    req.RaceYear,
		RaceDate:    p.Date(req.RaceYear),
		Discipline:  p.Discipline,
		Source:      p.SourceKey,
		Mark:        match.Finish,
		Place:       match.PlaceOverall,
		PlaceGender: optionalInt(match.PlaceGender),
		Bib:         optionalString(match.Bib),
		Division:    optionalString(match.Division),
	}

	saved, err := s.store.UpsertScraped(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Scraped result stored",
		zap.String("race", p.Key),
		zap.Int("year", req.RaceYear),
		zap.String("athlete", saved.AthleteName),
		zap.String("mark", saved.Mark),
	)

	return &Outcome{Found: true, Result: &saved}, nil
}

// listMarkupURL builds the provider search URL for a list-markup race.
func listMarkupURL(st ListMarkup, req Request) string {
	q := url.Values{}
	q.Set("pid", "search")
	q.Set("lang", "EN_CAP")
	if st.EventCode != "" {
		q.Set("event", st.EventCode)
	}
	q.Set("event_main_group", "runner")
	q.Set("search[name]", req.LastName)
	q.Set("search[firstname]", req.FirstName)
	q.Set("search_sort", "name")
	q.Set("num_results", "100")
	return st.BaseURL(req.RaceYear) + "?" + q.Encode()
}

// storedName turns a printed "Last, First" name into the store's
// "first last" key form.
func storedName(printed string) string {
	last, first, ok := strings.Cut(printed, ",")
	if !ok {
		return strings.ToLower(strings.TrimSpace(printed))
	}
	return strings.ToLower(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func optionalInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
