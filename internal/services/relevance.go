package services

import "strings"

var (
	primaryTopicKeywords = []string{"one nation one election", "onoe", "simultaneous election", "synchronize"}

	secondaryTopicKeywords = []string{"election", "constitution", "lok sabha", "assembly", "federalism", "voting"}
)

// minSecondaryHits is the number of distinct secondary keywords that make a
// question on-topic when no primary keyword is present.
const minSecondaryHits = 2

// IsONOERelated reports whether a question is about One Nation One Election.
func IsONOERelated(question string) bool {
	q := strings.ToLower(question)
	if containsAny(q, primaryTopicKeywords) {
		return true
	}

	hits := 0
	for _, k := range secondaryTopicKeywords {
		if strings.Contains(q, k) {
			hits++
		}
	}
	return hits >= minSecondaryHits
}
