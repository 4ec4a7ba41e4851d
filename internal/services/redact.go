package services

import "regexp"

const (
	PartyPlaceholder  = "Party X"
	LeaderPlaceholder = "Leader Y"
)

type redaction struct {
	pattern     *regexp.Regexp
	replacement string
}

// Applied in order: parties, then people.
var blindModeRedactions = []redaction{
	{regexp.MustCompile(`(?i)BJP|Congress|AITC|AAP|SP|BSP`), PartyPlaceholder},
	{regexp.MustCompile(`(?i)Narendra Modi|Rahul Gandhi|Amit Shah`), LeaderPlaceholder},
}

// Redact replaces party and leader names with neutral placeholders. Matches
// are case-insensitive substrings, not whole words.
func Redact(text string) string {
	for _, r := range blindModeRedactions {
		text = r.pattern.ReplaceAllLiteralString(text, r.replacement)
	}
	return text
}

// Blind reader replacements, applied in order over the running text. Like
// Redact, matches are case-insensitive substrings.
var blindReadRedactions = literalRedactions([][2]string{
	// Political parties
	{"Bharatiya Janata Party", "a national political party"},
	{"BJP", "a national political party"},
	{"Indian National Congress", "a national opposition party"},
	{"Congress", "a national opposition party"},
	{"INC", "a national opposition party"},
	{"Aam Aadmi Party", "a regional political party"},
	{"AAP", "a regional political party"},
	{"Trinamool Congress", "a regional political party"},
	{"TMC", "a regional political party"},
	{"DMK", "a regional political party"},

	// Government references
	{"state government", "the regional administration"},
	{"central government", "the national administration"},
	{"government", "the administration"},

	// Leadership titles
	{"Prime Minister", "the head of government"},
	{"PM", "the head of government"},
	{"Chief Minister", "the head of the regional government"},
	{"CM", "the head of the regional government"},

	// Locations
	{"Delhi", "the national capital"},
	{"India", "the country"},
})

func literalRedactions(pairs [][2]string) []redaction {
	out := make([]redaction, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, redaction{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p[0])),
			replacement: p[1],
		})
	}
	return out
}

// BlindRead neutralises party, office and place names in an article so it
// can be read without partisan cues.
func BlindRead(text string) string {
	for _, r := range blindReadRedactions {
		text = r.pattern.ReplaceAllLiteralString(text, r.replacement)
	}
	return text
}
