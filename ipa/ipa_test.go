package ipa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameDictionaryHit(t *testing.T) {
	var g Generator
	assert.Equal(t, "/ˈθʌndər/", g.Name("Thunder"))
	assert.Equal(t, "/ˈθʌndər stɔːrm/", g.Name("Thunder Storm"))
	assert.Equal(t, "", g.Name(""))
}

func TestNameLetterRules(t *testing.T) {
	var g Generator
	// ch digraph must be rewritten before c alone.
	assert.Equal(t, "/tʃɪp/", g.Name("Chip"))
}

func TestTrackExactAndPartial(t *testing.T) {
	var g Generator

	ipa, country := g.Track("Woodbine")
	assert.Equal(t, "/wʊdbaɪn/", ipa)
	assert.Equal(t, "Canada", country)

	// Partial matches pick up the curated entry.
	ipa, country = g.Track("Belmont")
	assert.Equal(t, "/belmɑːnt pɑːrk/", ipa)
	assert.Equal(t, "USA", country)
}

func TestTrackSynthesized(t *testing.T) {
	var g Generator

	ipa, country := g.Track("Zzyzx Downs")
	assert.Equal(t, "Unknown", country)
	assert.True(t, strings.HasPrefix(ipa, "/"))
	assert.True(t, strings.HasSuffix(ipa, "/"))
	assert.Greater(t, len(ipa), 2)

	ipa, country = g.Track("")
	assert.Equal(t, "", ipa)
	assert.Equal(t, "", country)
}
