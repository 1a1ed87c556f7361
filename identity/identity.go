// Package identity derives the stable, human-readable identifiers used as
// database keys: race ids and name keys for horses, trainers, jockeys,
// owners and breeders. Every component that needs a key goes through this
// package so the same input can never produce two different keys.
package identity

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

type trackSlug struct {
	slug string
	code string
}

// Known site track slugs and their short codes. Ordered: the canonical
// slug for a code comes before any variants, so the reverse lookup always
// recovers the same slug for a code.
var trackSlugs = []trackSlug{
	{"gulfstream-park", "GP"},
	{"santa-anita-park", "SA"},
	{"SANTA-ANIT", "SA"}, // abbreviated variant seen in some URLs
	{"keeneland", "KEE"},
	{"churchill-downs", "CD"},
	{"belmont-park", "BEL"},
	{"oaklawn-park", "OP"},
	{"del-mar", "DMR"},
	{"tampa-bay-downs", "TAM"},
	{"laurel-park", "LRL"},
	{"saratoga", "SAR"},
	{"monmouth-park", "MTH"},
	{"pimlico", "PIM"},
	{"aqueduct", "AQU"},
	{"woodbine", "WO"},
	{"thistledown", "TDN"},
}

// TrackCodes maps known site track slugs to short track codes.
var TrackCodes = map[string]string{}

// SlugForTrackCode is the reverse lookup: the canonical site slug for a
// short code, or "" when the code is not in the curated mapping.
func SlugForTrackCode(code string) string {
	for _, ts := range trackSlugs {
		if ts.code == code {
			return ts.slug
		}
	}
	return ""
}

type typeAbbrev struct {
	phrase string
	abbr   string
}

// Race type phrases and their id abbreviations. Matching is longest phrase
// first so "maiden claiming" wins over "claiming".
var typeAbbrevs = []typeAbbrev{
	{"maiden special weight", "MSW"},
	{"allowance optional claiming", "AOC"},
	{"allowance", "ALW"},
	{"claiming", "CLM"},
	{"stakes", "STK"},
	{"handicap", "HCP"},
	{"starter optional claiming", "SOC"},
	{"starter allowance", "SA"},
	{"maiden claiming", "MCL"},
	{"optional claiming", "OC"},
	{"powder break s.", "PDRBS"},
	{"game face s.", "GFS"},
}

func init() {
	for _, ts := range trackSlugs {
		TrackCodes[ts.slug] = ts.code
	}
	sort.SliceStable(typeAbbrevs, func(i, j int) bool {
		return len(typeAbbrevs[i].phrase) > len(typeAbbrevs[j].phrase)
	})
}

// TypeAbbrev resolves a race type description to its id abbreviation,
// falling back to "UNK" when no known phrase occurs in it.
func TypeAbbrev(raceType string) string {
	if raceType == "" || raceType == "N/A" {
		return "UNK"
	}
	lower := strings.ToLower(raceType)
	for _, ta := range typeAbbrevs {
		if strings.Contains(lower, ta.phrase) {
			return ta.abbr
		}
	}
	return "UNK"
}

// RaceID derives the race key <code>_<YYYYMMDD>_R<number>_<typeAbbrev>.
// The track argument may be a site slug or an already-short code; unmapped
// values are upper-cased and capped at 10 characters. Returns "" when the
// track is empty, in which case the caller should substitute a placeholder
// id rather than drop the record.
func RaceID(track string, date time.Time, number, raceType string) string {
	if track == "" {
		return ""
	}
	code, ok := TrackCodes[track]
	if !ok {
		code = strings.ToUpper(track)
		if len(code) > 10 {
			code = code[:10]
		}
	}

	dateStr := "NODATE"
	if !date.IsZero() {
		dateStr = date.Format("20060102")
	}

	num := "UNK"
	if number != "" && number != "N/A" {
		num = number
	}

	return fmt.Sprintf("%s_%s_R%s_%s", code, dateStr, num, TypeAbbrev(raceType))
}

// PlaceholderRaceID is the deterministic fallback id used when a race id
// cannot be derived. The record is kept but flagged for operator review.
func PlaceholderRaceID(number string) string {
	if number == "" {
		number = "UNK"
	}
	return "ERROR_GENERATING_ID_" + number
}

var nameKeyReplacer = strings.NewReplacer(" ", "_", "'", "", ".", "", ",", "")

// NameKey turns a display name into a key: spaces become underscores and
// punctuation is stripped. Only a fallback — a source-provided id (see
// HorseIDFromURL) always takes precedence once known.
func NameKey(name string) string {
	return nameKeyReplacer.Replace(strings.TrimSpace(name))
}

// HorseIDFromURL extracts the canonical horse identity from a profile URL
// path such as "/horse/Mine_Strike", decoding any percent escapes.
func HorseIDFromURL(href string) string {
	if href == "" {
		return ""
	}
	raw := href
	if i := strings.LastIndex(href, "/"); i >= 0 {
		raw = href[i+1:]
	}
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}
