// Package ipa is the default phonetic-transcription collaborator: it turns
// names and track names into IPA pronunciation strings for the dashboard.
// Curated dictionaries cover the common cases; everything else falls back
// to crude letter rules, which is deliberately better than nothing.
package ipa

import (
	"strings"

	"go.uber.org/zap"
)

// Generator produces transcriptions from built-in dictionaries and basic
// English letter rules. It satisfies pipeline.Transcriber.
type Generator struct{}

// Common name pronunciations. Whole-string match first, then per word.
var nameDict = map[string]string{
	"Andrea":    "ænˈdriːə",
	"Thunder":   "ˈθʌndər",
	"Lightning": "ˈlaɪtnɪŋ",
	"Storm":     "stɔːrm",
	"Spirit":    "ˈspɪrɪt",
	"Champion":  "ˈtʃæmpiən",
	"Victory":   "ˈvɪktəri",
	"Joseph":    "ˈdʒoʊzəf",
	"Scott":     "skɒt",
	"Pierce":    "pɪərs",
	"Smith":     "smɪθ",
	"Johnson":   "ˈdʒɑːnsən",
	"Williams":  "ˈwɪljəmz",
	"Brown":     "braʊn",
	"Jones":     "dʒoʊnz",
}

// Ordered so digraphs are rewritten before their single letters.
var letterRules = []struct{ from, to string }{
	{"ch", "tʃ"},
	{"sh", "ʃ"},
	{"th", "θ"},
	{"ng", "ŋ"},
	{"ph", "f"},
	{"ck", "k"},
	{"qu", "kw"},
	{"x", "ks"},
	{"c", "k"},
	{"y", "i"},
	{"j", "dʒ"},
	{"a", "æ"},
	{"i", "ɪ"},
	{"o", "ɑː"},
	{"u", "ʌ"},
}

// Name returns an IPA transcription of a name, "/.../" wrapped, or "" for
// empty input.
func (Generator) Name(text string) string {
	if text == "" {
		return ""
	}
	if p, ok := nameDict[text]; ok {
		return "/" + p + "/"
	}

	words := strings.Fields(text)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if p, ok := nameDict[w]; ok {
			parts = append(parts, p)
			continue
		}
		parts = append(parts, basicWord(w))
	}
	return "/" + strings.Join(parts, " ") + "/"
}

func basicWord(word string) string {
	out := strings.ToLower(word)
	for _, r := range letterRules {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	return out
}

type trackEntry struct {
	ipa     string
	country string
}

// Curated track pronunciations with country of origin.
var trackDict = map[string]trackEntry{
	"Gulfstream Park":      {"/gʌlfstriːm pɑːrk/", "USA"},
	"Churchill Downs":      {"/tʃɜːrtʃɪl daʊnz/", "USA"},
	"Belmont Park":         {"/belmɑːnt pɑːrk/", "USA"},
	"Santa Anita Park":     {"/sæntə ænɪtə pɑːrk/", "USA"},
	"Saratoga Race Course": {"/særətoʊgə reɪs kɔːrs/", "USA"},
	"Saratoga":             {"/ˌsærəˈtoʊgə/", "USA"},
	"Thistledown":          {"/ˈθɪsəldaʊn/", "USA"},
	"Del Mar":              {"/del mɑːr/", "USA"},
	"Keeneland":            {"/kiːnlænd/", "USA"},
	"Oaklawn Park":         {"/oʊklɔːn pɑːrk/", "USA"},
	"Fair Grounds":         {"/fɛr graʊndz/", "USA"},
	"Aqueduct":             {"/ækwɪdʌkt/", "USA"},
	"Pimlico":              {"/pɪmlɪkoʊ/", "USA"},
	"Monmouth Park":        {"/mɑːnməθ pɑːrk/", "USA"},
	"Laurel Park":          {"/lɔːrəl pɑːrk/", "USA"},
	"Tampa Bay Downs":      {"/tæmpə beɪ daʊnz/", "USA"},
	"Woodbine":             {"/wʊdbaɪn/", "Canada"},
	"Hastings Racecourse":  {"/heɪstɪŋz reɪskɔːrs/", "Canada"},
	"Ascot":                {"/æskət/", "UK"},
	"Epsom Downs":          {"/epsəm daʊnz/", "UK"},
	"Newmarket":            {"/nuːmɑːrkɪt/", "UK"},
	"Cheltenham":           {"/tʃeltənəm/", "UK"},
	"Aintree":              {"/eɪntriː/", "UK"},
	"York":                 {"/jɔːrk/", "UK"},
	"Goodwood":             {"/gʊdwʊd/", "UK"},
	"Doncaster":            {"/dɑːnkæstər/", "UK"},
	"Longchamp":            {"/lɔ̃ʃɑ̃/", "France"},
	"Chantilly":            {"/ʃɑ̃tiˈji/", "France"},
	"Deauville":            {"/doˈvil/", "France"},
	"Saint-Cloud":          {"/sɛ̃kluː/", "France"},
	"Curragh":              {"/kʌrə/", "Ireland"},
	"Leopardstown":         {"/lepərdztaʊn/", "Ireland"},
	"Fairyhouse":           {"/fɛrihaʊs/", "Ireland"},
	"Flemington":           {"/flemɪŋtən/", "Australia"},
	"Randwick":             {"/rændwɪk/", "Australia"},
	"Caulfield":            {"/kɔːlfiːld/", "Australia"},
	"Moonee Valley":        {"/muːniː væli/", "Australia"},
	"Tokyo Racecourse":     {"/toʊkioʊreɪskɔːrs/", "Japan"},
	"Kyoto Racecourse":     {"/kjoʊtoʊreɪskɔːrs/", "Japan"},
	"Nakayama":             {"/nækəjæmə/", "Japan"},
	"Sha Tin":              {"/ʃɑːtɪn/", "Hong Kong"},
	"Happy Valley":         {"/hæpivæli/", "Hong Kong"},
	"Meydan":               {"/meɪdæn/", "UAE"},
	"Kenilworth":           {"/kenɪlwərθ/", "South Africa"},
	"Turffontein":          {"/tərfɑːnteɪn/", "South Africa"},
}

// Track returns the IPA transcription and country for a track name. Exact
// dictionary hits win, then partial matches ("Gulfstream" vs "Gulfstream
// Park"); unknown tracks get a synthesized approximation and country
// "Unknown".
func (Generator) Track(name string) (string, string) {
	if name == "" {
		return "", ""
	}
	if e, ok := trackDict[name]; ok {
		return e.ipa, e.country
	}

	lower := strings.ToLower(name)
	for key, e := range trackDict {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			return e.ipa, e.country
		}
	}

	zap.L().Warn("no curated track pronunciation, synthesizing", zap.String("track", name))
	return basicTrack(name), "Unknown"
}

func basicTrack(name string) string {
	parts := []string{}
	for _, word := range strings.Fields(name) {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}

		var b strings.Builder
		runes := []rune(word)
		for i, ch := range runes {
			switch {
			case ch == 'a':
				b.WriteString("æ")
			case ch == 'e':
				if i < len(runes)-1 { // final e is silent
					b.WriteString("e")
				}
			case ch == 'i':
				b.WriteString("ɪ")
			case ch == 'o':
				b.WriteString("oʊ")
			case ch == 'u':
				b.WriteString("ʌ")
			case ch == 'y':
				b.WriteString("aɪ")
			case strings.ContainsRune("bcdfghjklmnpqrstvwxz", ch):
				b.WriteRune(ch)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return "/" + strings.Join(parts, " ") + "/"
}
