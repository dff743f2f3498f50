package compare

import (
	"fmt"
	"sort"

	"head2head/core/athletics"
)

// unplacedSentinel ranks a missing official placing (place 0) worse than any
// explicit placing when deciding a matchup. Stored marks and places keep
// their original values.
const unplacedSentinel = 999

// Entry is one athlete's side of a matchup.
type Entry struct {
	Mark  string `json:"mark"`
	Place int    `json:"place"`
}

// Matchup is one comparable appearance shared by two athletes: same
// discipline, same calendar date.
type Matchup struct {
	Date        string `json:"date"`
	Discipline  string `json:"discipline"`
	Competition string `json:"competition"`
	Venue       string `json:"venue"`
	Country     string `json:"country"`
	Indoor      bool   `json:"indoor"`
	AthleteA    Entry  `json:"athleteA"`
	AthleteB    Entry  `json:"athleteB"`
	// Winner is "a", "b" or "tie".
	Winner string `json:"winner"`
}

// Record aggregates a set of matchups into a head-to-head record.
type Record struct {
	WinsA       int       `json:"winsA"`
	WinsB       int       `json:"winsB"`
	Ties        int       `json:"ties"`
	Total       int       `json:"total"`
	Matchups    []Matchup `json:"matchups"`
	Disciplines []string  `json:"disciplines"`
}

// raceKey identifies one appearance: competition id, discipline, calendar date.
func raceKey(r athletics.Result) string {
	return fmt.Sprintf("%d|%s|%s", r.CompetitionID, r.Discipline, r.DateOnly())
}

// dateKey is the fallback key using only discipline and calendar date. It
// bridges scraped records whose synthesized competition id does not line up
// with the canonical one.
func dateKey(r athletics.Result) string {
	return r.Discipline + "|" + r.DateOnly()
}

// Build pairs two athletes' result sets into matchups and aggregates the
// record. Both sets are run through FilterResults first, so passing
// pre-filtered sets is safe. Results of athlete A with no counterpart in
// athlete B's set are skipped; no partial matchup is emitted.
func Build(resultsA, resultsB []athletics.Result) Record {
	filteredA := FilterResults(resultsA)
	filteredB := FilterResults(resultsB)

	indexB := make(map[string]athletics.Result, len(filteredB))
	indexBByDate := make(map[string]athletics.Result, len(filteredB))
	for _, r := range filteredB {
		indexB[raceKey(r)] = r
		indexBByDate[dateKey(r)] = r
	}

	var (
		matchups      []Matchup
		disciplineSet = make(map[string]struct{})
		winsA, winsB  int
		ties          int
	)

	for _, a := range filteredA {
		b, ok := indexB[raceKey(a)]
		if !ok {
			b, ok = indexBByDate[dateKey(a)]
		}
		if !ok {
			continue
		}

		placeA := a.Place
		if placeA == 0 {
			placeA = unplacedSentinel
		}
		placeB := b.Place
		if placeB == 0 {
			placeB = unplacedSentinel
		}

		var winner string
		switch {
		case placeA < placeB:
			winner = "a"
			winsA++
		case placeB < placeA:
			winner = "b"
			winsB++
		default:
			winner = "tie"
			ties++
		}

		disciplineSet[a.Discipline] = struct{}{}

		matchups = append(matchups, Matchup{
			Date:        a.Date,
			Discipline:  a.Discipline,
			Competition: a.Competition,
			Venue:       a.Location.City,
			Country:     a.Location.Country,
			Indoor:      a.Location.Indoor,
			AthleteA:    Entry{Mark: a.Mark, Place: placeA},
			AthleteB:    Entry{Mark: b.Mark, Place: placeB},
			Winner:      winner,
		})
	}

	// Newest first; encounters on the same date keep their original order.
	sort.SliceStable(matchups, func(i, j int) bool {
		return matchups[i].Date > matchups[j].Date
	})

	disciplines := make([]string, 0, len(disciplineSet))
	for d := range disciplineSet {
		disciplines = append(disciplines, d)
	}
	sort.Strings(disciplines)

	return Record{
		WinsA:       winsA,
		WinsB:       winsB,
		Ties:        ties,
		Total:       len(matchups),
		Matchups:    matchups,
		Disciplines: disciplines,
	}
}

// FilterByDiscipline re-aggregates an already-built record over the matchups
// of a single discipline. The counts equal what a rebuild restricted to that
// discipline would produce; filtering commutes with aggregation. The full
// discipline list is preserved so callers can keep offering other filters.
func FilterByDiscipline(rec Record, discipline string) Record {
	if discipline == "" {
		return rec
	}

	var filtered []Matchup
	var winsA, winsB, ties int
	for _, m := range rec.Matchups {
		if m.Discipline != discipline {
			continue
		}
		filtered = append(filtered, m)
		switch m.Winner {
		case "a":
			winsA++
		case "b":
			winsB++
		default:
			ties++
		}
	}

	return Record{
		WinsA:       winsA,
		WinsB:       winsB,
		Ties:        ties,
		Total:       len(filtered),
		Matchups:    filtered,
		Disciplines: rec.Disciplines,
	}
}
