package athletics

// SearchResult is one athlete returned by the canonical search endpoint.
type SearchResult struct {
	ID                  int     `json:"id"`
	Firstname           string  `json:"firstname"`
	Lastname            string  `json:"lastname"`
	Country             string  `json:"country"`
	Birthdate           *string `json:"birthdate"`
	Sex                 string  `json:"sex"`
	LevenshteinDistance int     `json:"levenshteinDistance"`
}

// Location describes where a result was achieved.
type Location struct {
	Stadium *string `json:"stadium"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Indoor  bool    `json:"indoor"`
}

// Result is one competitive appearance from the canonical results service.
// Mark is free text: times and distances share the field. Place 0 means no
// official place was recorded. Race is the round code ("F", "H1", "SF2", ...).
type Result struct {
	Category         string   `json:"category"`
	Competition      string   `json:"competition"`
	CompetitionID    int      `json:"competitionId"`
	Date             string   `json:"date"`
	Discipline       string   `json:"discipline"`
	DisciplineCode   string   `json:"disciplineCode"`
	EventID          int      `json:"eventId"`
	Mark             string   `json:"mark"`
	PerformanceValue float64  `json:"performanceValue"`
	Place            int      `json:"place"`
	Race             string   `json:"race"`
	ResultScore      float64  `json:"resultScore"`
	Wind             *float64 `json:"wind"`
	Legal            bool     `json:"legal"`
	IsTechnical      bool     `json:"isTechnical"`
	Location         Location `json:"location"`
	Records          []string `json:"records"`
}

// DateOnly returns the calendar date portion of the result date, dropping
// any time component. Matching keys ignore the time of day.
func (r Result) DateOnly() string {
	for i := 0; i < len(r.Date); i++ {
		if r.Date[i] == 'T' {
			return r.Date[:i]
		}
	}
	return r.Date
}
