package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaceURL(t *testing.T) {
	slug, date, ok := RaceURL("https://example.com/entries-results/gulfstream-park/2026-03-14")
	require.True(t, ok)
	assert.Equal(t, "gulfstream-park", slug)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), date)

	// Specific race URLs carry the short code; it maps back to the slug.
	slug, date, ok = RaceURL("https://example.com/race/2026-03-14_GP_5")
	require.True(t, ok)
	assert.Equal(t, "gulfstream-park", slug)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), date)

	// Unknown short codes pass through as-is.
	slug, _, ok = RaceURL("https://example.com/race/2026-03-14_XX_1")
	require.True(t, ok)
	assert.Equal(t, "XX", slug)

	_, _, ok = RaceURL("https://example.com/somewhere-else")
	assert.False(t, ok)
}

func TestRaceTitle(t *testing.T) {
	// Short form wins even when the rest of the title has more to say.
	p := RaceTitle("Gulfstream Park Race # 1, 6:50 PM")
	assert.Equal(t, "1", p.Number)
	assert.Equal(t, "", p.TypeName)

	p = RaceTitle("RACE 5 - CLAIMING $8,000")
	assert.Equal(t, "5", p.Number)
	assert.Equal(t, "CLAIMING $8,000", p.TypeName)

	p = RaceTitle("CARRERA 3 - PREMIO CLASICO")
	assert.Equal(t, "3", p.Number)
	assert.Equal(t, "PREMIO CLASICO", p.TypeName)

	// Stakes races often have no number at all.
	p = RaceTitle("THE PEGASUS STAKES")
	assert.Equal(t, "", p.Number)
	assert.Equal(t, "THE PEGASUS STAKES", p.TypeName)
}

func TestCleanRaceType(t *testing.T) {
	assert.Equal(t, "CLAIMING", CleanRaceType("CLAIMING $8,000"))
	assert.Equal(t, "STAKES", CleanRaceType("STAKES, $50,000"))
	assert.Equal(t, "N/A", CleanRaceType("N/A"))
	assert.Equal(t, "", CleanRaceType(""))
}

func TestAgeFromConditions(t *testing.T) {
	assert.Equal(t, "3+ años", AgeFromConditions("3 Year Olds And Up"))
	assert.Equal(t, "2 años", AgeFromConditions("2 Year Olds"))
	assert.Equal(t, "4+ años", AgeFromConditions("4 YO And Up"))
	assert.Equal(t, "N/A", AgeFromConditions("Fillies And Mares"))
	assert.Equal(t, "N/A", AgeFromConditions(""))
}

func TestStripAgeFromConditions(t *testing.T) {
	assert.Equal(t, "Fillies | Claiming",
		StripAgeFromConditions("Fillies | 3 Year Olds And Up | Claiming"))
	assert.Equal(t, "N/A", StripAgeFromConditions("3 Year Olds"))
	assert.Equal(t, "N/A", StripAgeFromConditions("N/A"))
}

func TestPurseValue(t *testing.T) {
	v := PurseValue("$53,000 Purse")
	require.NotNil(t, v)
	assert.Equal(t, 53000, *v)

	v = PurseValue("€12,500.00 Guaranteed")
	require.NotNil(t, v)
	assert.Equal(t, 12500, *v)

	assert.Nil(t, PurseValue("no money listed"))
	assert.Nil(t, PurseValue(""))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \t b\n c "))
}
