package services

import "strings"

const (
	ReplyConstitutional = "ONOE requires changes to Articles 83 and 172. It would likely need a " +
		"Constitutional Amendment Bill passed by a two-thirds majority in Parliament."
	ReplyCommitteeStatus = "The Kovind Committee submitted its report in March 2024. The Union Cabinet " +
		"has accepted it, but legislative action is still pending."
)

type cannedRule struct {
	keywords []string
	reply    string
}

// Evaluated in order; the first rule with a matching keyword wins.
var cannedRules = []cannedRule{
	{keywords: []string{"article", "constitution", "legal"}, reply: ReplyConstitutional},
	{keywords: []string{"status", "current", "happen"}, reply: ReplyCommitteeStatus},
}

// MatchRule returns a fixed answer when the question hits the rule table.
// Matching is plain substring containment on the lower-cased question, so
// "legally" matches "legal".
func MatchRule(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, rule := range cannedRules {
		if containsAny(q, rule.keywords) {
			return rule.reply, true
		}
	}
	return "", false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
