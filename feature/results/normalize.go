package results

import (
	"fmt"
	"strings"

	"head2head/core/athletics"
	"head2head/feature/results/models"
)

// raceLocation maps well-known race name fragments to venue metadata.
// Unmatched races yield empty city/country; that is not an error.
var raceLocations = []struct {
	Fragment string
	City     string
	Country  string
}{
	{"Chicago", "Chicago", "USA"},
	{"Boston", "Boston", "USA"},
	{"London", "London", "GBR"},
}

func lookupRaceLocation(raceName string) (city, country string) {
	for _, loc := range raceLocations {
		if strings.Contains(raceName, loc.Fragment) {
			return loc.City, loc.Country
		}
	}
	return "", ""
}

// competitionID synthesizes a deterministic competition identifier from the
// provider source key and race year, so repeated normalization of the same
// logical competition yields the same id. The hash wraps at 32 bits.
func competitionID(source string, raceYear int) int {
	s := fmt.Sprintf("%s-%d", source, raceYear)
	var hash int32
	for _, ch := range []byte(s) {
		hash = hash<<5 - hash + int32(ch)
	}
	if hash < 0 {
		hash = -hash
	}
	return int(hash)
}

// ToCanonical maps a persisted scraped record into the canonical result
// shape used by the merger and the head-to-head builder. Scraped sources
// list finals only, so the round code is fixed to "F".
func ToCanonical(s models.ScrapedResult) athletics.Result {
	city, country := lookupRaceLocation(s.RaceName)

	code := s.Discipline
	if s.Discipline == "Marathon" {
		code = "MAR"
	}

	return athletics.Result{
		Competition:    s.RaceName,
		CompetitionID:  competitionID(s.Source, s.RaceYear),
		Date:           s.RaceDate,
		Discipline:     s.Discipline,
		DisciplineCode: code,
		Mark:           s.Mark,
		Place:          s.Place,
		Race:           "F",
		Legal:          true,
		Location: athletics.Location{
			City:    city,
			Country: country,
			Indoor:  false,
		},
		Records: []string{},
	}
}
