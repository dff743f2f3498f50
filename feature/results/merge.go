package results

import (
	"strings"

	"head2head/core/athletics"
	"head2head/feature/results/models"
)

// DedupeScraped combines scraped record lists retrieved through different
// lookup paths (by name, by canonical id) into one list, keeping the first
// occurrence of each store row id.
func DedupeScraped(lists ...[]models.ScrapedResult) []models.ScrapedResult {
	seen := make(map[uint]struct{})
	var unique []models.ScrapedResult
	for _, list := range lists {
		for _, rec := range list {
			if _, ok := seen[rec.ID]; ok {
				continue
			}
			seen[rec.ID] = struct{}{}
			unique = append(unique, rec)
		}
	}
	return unique
}

// mergeKey is the dedup key for cross-source merging: discipline plus the
// calendar date with any time component dropped.
func mergeKey(discipline, date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		date = date[:i]
	}
	return discipline + "|" + date
}

// Merge unions a canonical result set with scraped records for the same
// athlete, deduplicating by (discipline, date). Canonical data always wins
// on conflict; appended scraped records keep their normalization order.
func Merge(canonical []athletics.Result, scraped []models.ScrapedResult) []athletics.Result {
	if len(scraped) == 0 {
		return canonical
	}

	existing := make(map[string]struct{}, len(canonical))
	for _, r := range canonical {
		existing[mergeKey(r.Discipline, r.Date)] = struct{}{}
	}

	merged := make([]athletics.Result, len(canonical), len(canonical)+len(scraped))
	copy(merged, canonical)

	for _, s := range scraped {
		key := mergeKey(s.Discipline, s.RaceDate)
		if _, ok := existing[key]; ok {
			continue
		}
		merged = append(merged, ToCanonical(s))
		existing[key] = struct{}{}
	}

	return merged
}
