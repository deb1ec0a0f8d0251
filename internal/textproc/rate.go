package textproc

import "math"

// WordSet is the read-only view of a lexicon needed for scoring.
type WordSet interface {
	Contains(word string) bool
}

// CalculateJaundiceRate returns the percentage of words found in charged,
// counting repeats, rounded to two decimals. An empty text scores 0.
func CalculateJaundiceRate(words []string, charged WordSet) float64 {
	if len(words) == 0 {
		return 0
	}
	found := 0
	for _, w := range words {
		if charged.Contains(w) {
			found++
		}
	}
	score := float64(found) / float64(len(words)) * 100
	return math.Round(score*100) / 100
}
