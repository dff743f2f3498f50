package compare

import (
	"strings"

	"head2head/core/athletics"
)

// nonFinalPrefixes are round codes that mark heats, semifinals, preliminary
// and qualifying rounds. "F", "F1", "DF" are finals; "H1", "SF2", "PR4" are not.
var nonFinalPrefixes = []string{"H", "SF", "PR", "Q"}

var relayFragments = []string{"relay", "medley", "4x"}

func isFinal(race string) bool {
	if race == "" {
		return true
	}
	upper := strings.ToUpper(strings.TrimSpace(race))
	for _, p := range nonFinalPrefixes {
		if strings.HasPrefix(upper, p) {
			return false
		}
	}
	return true
}

func isRelay(discipline string) bool {
	lower := strings.ToLower(discipline)
	for _, f := range relayFragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// FilterResults keeps only finals of individual disciplines: non-final
// rounds and relay/medley events are removed. The filter is idempotent, so
// applying it to an already-filtered set changes nothing.
func FilterResults(results []athletics.Result) []athletics.Result {
	filtered := make([]athletics.Result, 0, len(results))
	for _, r := range results {
		if isFinal(r.Race) && !isRelay(r.Discipline) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
