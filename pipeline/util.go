package pipeline

import (
	"strconv"
	"strings"
)

// nullable maps the extractor's "missing" markers to SQL null.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return nil
	}
	return &s
}

// cleanField trims a scraped profile value and drops sentinels, so a
// "Unknown" scrape can never overwrite a real stored value.
func cleanField(s *string) *string {
	if s == nil {
		return nil
	}
	name, ok := refName(*s)
	if !ok {
		return nil
	}
	return &name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// shortTrackCode takes the leading segment of a race id as the track code,
// capped at the column width.
func shortTrackCode(raceID string) string {
	code := "UNK"
	if i := strings.Index(raceID, "_"); i > 0 {
		code = raceID[:i]
	}
	if len(code) > 10 {
		code = code[:10]
	}
	return code
}
