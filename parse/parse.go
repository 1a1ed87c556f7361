// Package parse normalizes raw scraped text: race page URLs, race titles,
// conditions and purse strings. The DOM extraction itself lives upstream;
// this package only deals with the strings it hands over.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"caballosapi/identity"
)

var (
	entriesURLRe  = regexp.MustCompile(`/entries-results/([^/]+)/(\d{4}-\d{2}-\d{2})`)
	specificURLRe = regexp.MustCompile(`/race/(\d{4}-\d{2}-\d{2})_([A-Z0-9]+)_(\d+)`)
)

// RaceURL extracts the track slug and race date from either URL form the
// source site uses: .../entries-results/<slug>/<date> or
// .../race/<date>_<CODE>_<num>. ok is false when neither form matches.
func RaceURL(rawURL string) (slug string, date time.Time, ok bool) {
	if m := entriesURLRe.FindStringSubmatch(rawURL); m != nil {
		d, err := time.Parse("2006-01-02", m[2])
		if err != nil {
			return m[1], time.Time{}, true
		}
		return m[1], d, true
	}

	if m := specificURLRe.FindStringSubmatch(rawURL); m != nil {
		slug = identity.SlugForTrackCode(m[2])
		if slug == "" {
			slug = m[2]
		}
		d, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			return slug, time.Time{}, true
		}
		return slug, d, true
	}

	return "", time.Time{}, false
}

// ParsedTitle is the race number and type description pulled out of a race
// card heading.
type ParsedTitle struct {
	Number   string
	TypeName string
}

var (
	titleShortRe   = regexp.MustCompile(`(?i)Race\s*#\s*(\d+)`)
	titleWithDesc  = regexp.MustCompile(`(?i)(?:RACE|CARRERA)\s*#?\s*(\d+)\s*-\s*(.+)`)
	titleNumRe     = regexp.MustCompile(`(?i)((?:RACE|CARRERA)\s*#?\s*\d+)`)
	titleDigitsRe  = regexp.MustCompile(`\d+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	moneyAmountRe  = regexp.MustCompile(`\$\s*[\d,\s]+`)
	leadingCommaRe = regexp.MustCompile(`^[,\s]+`)
	trailingComma  = regexp.MustCompile(`[,\s]+$`)
)

// RaceTitle extracts the race number and, where present, the race type
// description from a card heading. Headings come in three shapes:
// "Gulfstream Park Race # 1, 6:50 PM", "RACE 5 - CLAIMING $8,000" and plain
// stakes names like "THE PEGASUS STAKES" (no number at all).
func RaceTitle(title string) ParsedTitle {
	if m := titleShortRe.FindStringSubmatch(title); m != nil {
		return ParsedTitle{Number: m[1]}
	}

	if m := titleWithDesc.FindStringSubmatch(title); m != nil {
		return ParsedTitle{Number: m[1], TypeName: CleanText(m[2])}
	}

	if m := titleNumRe.FindStringSubmatch(title); m != nil {
		section := m[1]
		num := titleDigitsRe.FindString(section)
		if num != "" {
			desc := CleanText(strings.Trim(strings.Replace(title, section, "", 1), " ,-"))
			if desc == "" && title != section {
				desc = CleanText(title)
			}
			return ParsedTitle{Number: num, TypeName: desc}
		}
	}

	return ParsedTitle{TypeName: CleanText(title)}
}

// CleanText collapses runs of whitespace and trims the ends.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// CleanRaceType strips monetary amounts like "$8,000" out of a race type
// description ("CLAIMING $8,000" → "CLAIMING").
func CleanRaceType(raceType string) string {
	if raceType == "" || raceType == "N/A" {
		return raceType
	}
	cleaned := moneyAmountRe.ReplaceAllString(raceType, "")
	cleaned = leadingCommaRe.ReplaceAllString(cleaned, "")
	cleaned = trailingComma.ReplaceAllString(cleaned, "")
	return CleanText(cleaned)
}

var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s+Year\s+Olds?\s+And\s+Up`),
	regexp.MustCompile(`(?i)(\d+)\s+Year\s+Olds?`),
	regexp.MustCompile(`(?i)(\d+)\s+YO\s+And\s+Up`),
	regexp.MustCompile(`(?i)(\d+)\s+YO`),
}

var ageGeneralRe = regexp.MustCompile(`(?i)(\d+).*year`)

// AgeFromConditions pulls the age restriction out of a conditions string,
// e.g. "3 Year Olds And Up" → "3+ años". Returns "N/A" when nothing
// age-like is found.
func AgeFromConditions(conditions string) string {
	if conditions == "" || conditions == "N/A" {
		return "N/A"
	}

	for _, re := range agePatterns {
		if m := re.FindStringSubmatch(conditions); m != nil {
			if strings.Contains(strings.ToLower(conditions), "and up") {
				return m[1] + "+ años"
			}
			return m[1] + " años"
		}
	}

	if m := ageGeneralRe.FindStringSubmatch(conditions); m != nil {
		return m[1] + " años"
	}

	return "N/A"
}

var stripAgePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\|\s*\d+\s+Year\s+Olds?\s+And\s+Up`),
	regexp.MustCompile(`(?i)\|\s*\d+\s+Year\s+Olds?`),
	regexp.MustCompile(`(?i)\d+\s+Year\s+Olds?\s+And\s+Up\s*\|`),
	regexp.MustCompile(`(?i)\d+\s+Year\s+Olds?\s*\|`),
	regexp.MustCompile(`(?i)\d+\s+Year\s+Olds?\s+And\s+Up`),
	regexp.MustCompile(`(?i)\d+\s+Year\s+Olds?`),
}

var (
	doublePipeRe   = regexp.MustCompile(`\|\s*\|`)
	leadingPipeRe  = regexp.MustCompile(`^\s*\|\s*`)
	trailingPipeRe = regexp.MustCompile(`\s*\|\s*$`)
)

// StripAgeFromConditions removes the age restriction from a conditions
// string so it can be stored separately, tidying up leftover separators.
func StripAgeFromConditions(conditions string) string {
	if conditions == "" || conditions == "N/A" {
		return conditions
	}

	cleaned := conditions
	for _, re := range stripAgePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = doublePipeRe.ReplaceAllString(cleaned, "|")
	cleaned = leadingPipeRe.ReplaceAllString(cleaned, "")
	cleaned = trailingPipeRe.ReplaceAllString(cleaned, "")
	cleaned = CleanText(cleaned)

	if cleaned == "" {
		return "N/A"
	}
	return cleaned
}

var purseRe = regexp.MustCompile(`[\$€£]?\s*([\d,]+(?:\.\d{2})?)`)

// PurseValue extracts the numeric purse from text like "$53,000 Purse".
// Returns nil when no amount is present.
func PurseValue(purse string) *int {
	m := purseRe.FindStringSubmatch(purse)
	if m == nil {
		return nil
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	if i := strings.Index(digits, "."); i >= 0 {
		digits = digits[:i]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}
