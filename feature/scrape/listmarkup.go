package scrape

import (
	"strconv"
	"strings"
)

// ParsedRecord is the uniform intermediate record every provider strategy
// produces. It is never persisted directly; the scrape service converts the
// matching record into a stored scraped result.
type ParsedRecord struct {
	// Name is the printed name, "Last, First".
	Name    string
	Country string
	// PlaceOverall and PlaceGender are 0 when the provider printed a
	// placeholder instead of a number.
	PlaceOverall int
	PlaceGender  int
	Bib          string
	Division     string
	// Finish is the finishing time, HH:MM:SS.
	Finish string
	Year   int
	Event  string
}

// enDash is the placeholder providers print for "no value".
const enDash = "–"

// ParseListMarkup scans a list-based results page into parsed records.
// The scan is staged: rows are tokenized first, then fields are extracted
// within each row by their type markers. Rows that cannot yield a printed
// name or a finish time are dropped (header rows, DNFs, unparseable names).
func ParseListMarkup(markup string) []ParsedRecord {
	var records []ParsedRecord
	for _, row := range scanRows(markup) {
		if rec, ok := parseRow(row); ok {
			records = append(records, rec)
		}
	}
	return records
}

// scanRows tokenizes the markup into result rows: list items whose class
// marks them as a result entry. Header rows are skipped.
func scanRows(markup string) []string {
	var rows []string
	pos := 0
	for {
		start := strings.Index(markup[pos:], "<li")
		if start < 0 {
			break
		}
		start += pos

		openEnd := strings.IndexByte(markup[start:], '>')
		if openEnd < 0 {
			break
		}
		openTag := markup[start : start+openEnd+1]

		end := strings.Index(markup[start:], "</li>")
		if end < 0 {
			break
		}
		end += start + len("</li>")
		pos = end

		if !strings.Contains(attrValue(openTag, "class"), "list-group-item") {
			continue
		}
		row := markup[start:end]
		if strings.Contains(row, "list-group-header") {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// attrValue extracts a double-quoted attribute value from an opening tag.
func attrValue(tag, name string) string {
	marker := name + `="`
	i := strings.Index(tag, marker)
	if i < 0 {
		return ""
	}
	rest := tag[i+len(marker):]
	j := strings.IndexByte(rest, '"')
	if j < 0 {
		return ""
	}
	return rest[:j]
}

func parseRow(row string) (ParsedRecord, bool) {
	printed := printedName(row)
	if printed == "" {
		return ParsedRecord{}, false
	}

	name, country, ok := splitNameCountry(printed)
	if !ok {
		return ParsedRecord{}, false
	}

	finish := finishTime(row)
	if finish == "" || finish == enDash {
		// DNF / no-result rows carry no finish time.
		return ParsedRecord{}, false
	}

	year, _ := strconv.Atoi(fieldValue(row, "type-event_date"))

	return ParsedRecord{
		Name:         name,
		Country:      country,
		PlaceOverall: placeField(row, "place-secondary"),
		PlaceGender:  placeField(row, "place-primary"),
		Bib:          fieldValue(row, "type-field"),
		Division:     fieldValue(row, "type-age_class"),
		Finish:       finish,
		Year:         year,
		Event:        fieldValue(row, "type-event_name"),
	}, true
}

// printedName extracts the athlete's printed name from the full-name field:
// the text following the field's opening tag, skipping one optional anchor.
func printedName(row string) string {
	i := strings.Index(row, "type-fullname")
	if i < 0 {
		return ""
	}
	rest := row[i:]

	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return ""
	}
	rest = strings.TrimLeft(rest[gt+1:], " \t\r\n")

	if strings.HasPrefix(rest, "<a") {
		gt = strings.IndexByte(rest, '>')
		if gt < 0 {
			return ""
		}
		rest = rest[gt+1:]
	}

	if lt := strings.IndexByte(rest, '<'); lt >= 0 {
		rest = rest[:lt]
	}
	return strings.TrimSpace(rest)
}

// splitNameCountry applies the printed-name grammar: a trailing
// parenthesized token is the country code; without one, a comma-separated
// name is accepted with an empty country; anything else is unparseable.
func splitNameCountry(printed string) (name, country string, ok bool) {
	trimmed := strings.TrimSpace(printed)

	if strings.HasSuffix(trimmed, ")") {
		if open := strings.LastIndex(trimmed, "("); open >= 0 {
			code := trimmed[open+1 : len(trimmed)-1]
			if code != "" && isWord(code) {
				return strings.TrimSpace(trimmed[:open]), code, true
			}
		}
	}

	if strings.Contains(trimmed, ",") {
		return trimmed, "", true
	}
	return "", "", false
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// placeField reads a numeric place following the given marker. A literal
// en-dash placeholder means "no place" and is normalized to 0, never parsed
// as a number.
func placeField(row, marker string) int {
	i := strings.Index(row, marker)
	if i < 0 {
		return 0
	}
	rest := row[i:]

	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return 0
	}
	rest = strings.TrimLeft(rest[gt+1:], " \t\r\n")

	// At most one nested tag may sit between the marker and the value.
	if strings.HasPrefix(rest, "<") {
		gt = strings.IndexByte(rest, '>')
		if gt < 0 {
			return 0
		}
		rest = strings.TrimLeft(rest[gt+1:], " \t\r\n")
	}

	if strings.HasPrefix(rest, enDash) {
		return 0
	}

	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	if j == 0 {
		return 0
	}
	n, _ := strconv.Atoi(rest[:j])
	return n
}

// fieldValue locates a label-and-value field by its type marker and returns
// the text after the last closing tag boundary inside the field region;
// the visible label is discarded, the value kept. When the region has no
// nested tags, the tag-stripped text is returned.
func fieldValue(row, typeClass string) string {
	i := strings.Index(row, typeClass)
	if i < 0 {
		return ""
	}
	rest := row[i:]

	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return ""
	}
	rest = rest[gt+1:]

	content, ok := untilFieldClose(rest)
	if !ok {
		return ""
	}

	if last := strings.LastIndex(content, "</div>"); last >= 0 {
		return strings.TrimSpace(content[last+len("</div>"):])
	}
	return strings.TrimSpace(stripTags(content))
}

// untilFieldClose cuts the region before the field's own closing div: the
// first "</div>" whose trailing whitespace contains a line break. Closing
// tags of nested label divs sit on the same line as the value and are
// passed over.
func untilFieldClose(s string) (string, bool) {
	pos := 0
	for {
		idx := strings.Index(s[pos:], "</div>")
		if idx < 0 {
			return "", false
		}
		idx += pos

		after := s[idx+len("</div>"):]
		for k := 0; k < len(after); k++ {
			c := after[k]
			if c == '\n' {
				return s[:idx], true
			}
			if c != ' ' && c != '\t' && c != '\r' {
				break
			}
		}
		pos = idx + len("</div>")
	}
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// finishTime returns the last clock-shaped value among the row's time
// fields. Time fields repeat: earlier occurrences are intermediate splits,
// the last one is the finish.
func finishTime(row string) string {
	finish := ""
	pos := 0
	for {
		i := strings.Index(row[pos:], "type-time")
		if i < 0 {
			break
		}
		i += pos

		token, end := nextClockToken(row, i+len("type-time"))
		if token == "" {
			pos = i + len("type-time")
			continue
		}
		finish = token
		pos = end
	}
	return finish
}

// nextClockToken finds the next HH:MM:SS-shaped substring at or after from.
func nextClockToken(s string, from int) (string, int) {
	for i := from; i+8 <= len(s); i++ {
		if isClock(s[i : i+8]) {
			return s[i : i+8], i + 8
		}
	}
	return "", len(s)
}

func isClock(s string) bool {
	return isDigit(s[0]) && isDigit(s[1]) && s[2] == ':' &&
		isDigit(s[3]) && isDigit(s[4]) && s[5] == ':' &&
		isDigit(s[6]) && isDigit(s[7])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
