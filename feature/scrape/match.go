package scrape

import "strings"

// maxCandidates bounds the candidate names surfaced when no record matches.
const maxCandidates = 5

// normalizeName lowercases a name component and strips everything that is
// not a letter or whitespace.
func normalizeName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// nameMatches reports whether a printed "Last, First" name belongs to the
// target athlete. Last names must be equal; first names match when equal or
// when one is a prefix of the other, which covers abbreviated and
// diminutive first names on either side.
func nameMatches(printed, targetFirst, targetLast string) bool {
	last, first, ok := strings.Cut(printed, ",")
	if !ok {
		return false
	}

	parsedLast := normalizeName(last)
	parsedFirst := normalizeName(first)
	wantLast := normalizeName(targetLast)
	wantFirst := normalizeName(targetFirst)

	if parsedLast != wantLast {
		return false
	}
	if parsedFirst == wantFirst {
		return true
	}
	return strings.HasPrefix(parsedFirst, wantFirst) || strings.HasPrefix(wantFirst, parsedFirst)
}

// MatchRecord returns the first parsed record whose printed name matches
// the target name, in parser output order. When nothing matches, up to five
// candidate names are returned to aid manual correction.
func MatchRecord(records []ParsedRecord, targetFirst, targetLast string) (*ParsedRecord, []string) {
	for i := range records {
		if nameMatches(records[i].Name, targetFirst, targetLast) {
			return &records[i], nil
		}
	}

	candidates := make([]string, 0, maxCandidates)
	for _, r := range records {
		if len(candidates) == maxCandidates {
			break
		}
		candidates = append(candidates, r.Name)
	}
	return nil, candidates
}
