package scrape

import (
	"context"
	"fmt"
	"net/url"

	"head2head/core/utils"
	"head2head/core/webclient"
)

// eventConfig is the event-configuration response of a paginated JSON
// provider: one entry per staged edition.
type eventConfig struct {
	EventID  string         `json:"eventId"`
	Editions []eventEdition `json:"editions"`
}

type eventEdition struct {
	Year          int    `json:"year"`
	CompetitionID int    `json:"competitionId"`
	Table         string `json:"table"`
}

// searchPage is one page of the column-described search endpoint. Cells are
// loosely typed; the column list describes the row layout.
type searchPage struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// parsePaginatedAPI runs the two-step JSON protocol: resolve the year's
// competition id and result table from the event configuration, then page
// through the search endpoint filtered server-side by last name.
func parsePaginatedAPI(ctx context.Context, web *webclient.Client, p Provider, api PaginatedAPI, lastName string, year int) ([]ParsedRecord, error) {
	cfgURL := fmt.Sprintf("%s?event=%s", api.ConfigURL, url.QueryEscape(api.EventID))

	var cfg eventConfig
	if err := web.GetJSON(ctx, cfgURL, &cfg); err != nil {
		return nil, err
	}

	var edition *eventEdition
	available := make([]int, 0, len(cfg.Editions))
	for i := range cfg.Editions {
		available = append(available, cfg.Editions[i].Year)
		if cfg.Editions[i].Year == year {
			edition = &cfg.Editions[i]
		}
	}
	if edition == nil {
		return nil, errMissingEdition(p.RaceName, year, available)
	}

	pageSize := api.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	var records []ParsedRecord
	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("event", fmt.Sprintf("%d", edition.CompetitionID))
		q.Set("table", edition.Table)
		q.Set("filters[lastname]", lastName)
		q.Set("page", fmt.Sprintf("%d", page))
		q.Set("num_results", fmt.Sprintf("%d", pageSize))

		var result searchPage
		if err := web.GetJSON(ctx, api.SearchURL+"?"+q.Encode(), &result); err != nil {
			return nil, err
		}

		col := make(map[string]int, len(result.Columns))
		for i, name := range result.Columns {
			col[name] = i
		}
		cell := func(row []any, name string) any {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return nil
			}
			return row[i]
		}

		for _, row := range result.Rows {
			rec := ParsedRecord{
				Name:         utils.ToString(cell(row, "name")),
				Country:      utils.ToString(cell(row, "country")),
				PlaceOverall: utils.ToInt(cell(row, "place")),
				PlaceGender:  utils.ToInt(cell(row, "gender_place")),
				Bib:          utils.ToString(cell(row, "bib")),
				Division:     utils.ToString(cell(row, "division")),
				Finish:       utils.ToString(cell(row, "finish_time")),
				Year:         year,
				Event:        p.RaceName,
			}
			if rec.Finish == "" || rec.Finish == enDash {
				continue
			}
			records = append(records, rec)
		}

		if len(result.Rows) < pageSize {
			break
		}
	}

	return records, nil
}
