package scrape

import (
	"context"
	"fmt"
)

// AthleteInput is one batch member.
type AthleteInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	WaID      *int   `json:"waId,omitempty"`
}

// BatchRequest scrapes one race edition for several athletes at once.
type BatchRequest struct {
	Athletes []AthleteInput `json:"athletes"`
	RaceKey  string         `json:"raceKey"`
	RaceYear int            `json:"raceYear"`
}

// AthleteSummary is the per-athlete outcome of a batch scrape.
type AthleteSummary struct {
	Athlete string `json:"athlete"`
	Found   bool   `json:"found"`
	Detail  string `json:"detail"`
}

// BatchResult reports a batch scrape. Status is "ok" only when every
// athlete matched; any miss or error makes the batch "partial".
type BatchResult struct {
	Status    string           `json:"status"`
	Summaries []AthleteSummary `json:"summaries"`
}

// ScrapeBatch runs one scrape per athlete, collecting outcomes
// independently so a failure for one athlete never hides the others'
// results. The race key is validated up front.
func (s *Service) ScrapeBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if _, ok := s.registry.Get(req.RaceKey); !ok {
		return nil, errUnknownRace(req.RaceKey, s.registry.Keys())
	}

	result := &BatchResult{Status: "ok"}
	for _, athlete := range req.Athletes {
		display := athlete.FirstName + " " + athlete.LastName

		outcome, err := s.Scrape(ctx, Request{
			FirstName: athlete.FirstName,
			LastName:  athlete.LastName,
			WaID:      athlete.WaID,
			RaceKey:   req.RaceKey,
			RaceYear:  req.RaceYear,
		})

		switch {
		case err != nil:
			result.Status = "partial"
			result.Summaries = append(result.Summaries, AthleteSummary{
				Athlete: display,
				Detail:  fmt.Sprintf("error: %v", err),
			})
		case !outcome.Found:
			result.Status = "partial"
			result.Summaries = append(result.Summaries, AthleteSummary{
				Athlete: display,
				Detail:  outcome.Message,
			})
		default:
			result.Summaries = append(result.Summaries, AthleteSummary{
				Athlete: display,
				Found:   true,
				Detail:  fmt.Sprintf("%s (place %d)", outcome.Result.Mark, outcome.Result.Place),
			})
		}
	}

	return result, nil
}
