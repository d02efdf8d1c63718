package detection

import (
	"unicode/utf8"
)

// Weight of the trigram-Jaccard bonus in the hybrid similarity.
const trigramBonusWeight = 0.15

// Character n-gram size used for the structural bonus.
const ngramSize = 3

// Hybrid similarity between two normalized texts: Levenshtein-based
// similarity as the primary signal, plus a bounded trigram-Jaccard bonus
// that rewards shared structural substrings without being allowed to
// suppress an already-high Levenshtein score. Capped at 1.0.
func (d *ClusterDetector) hybridSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	similarity := d.levenshteinSimilarity(a, b) + trigramBonusWeight*ngramJaccard(a, b)
	if similarity > 1 {
		similarity = 1
	}
	return similarity
}

// 1 - distance/maxLen, in [0,1].
func (d *ClusterDetector) levenshteinSimilarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	distance := d.fuzzy.Distance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// Jaccard index over the character trigram sets of both strings. Strings
// shorter than one trigram contribute themselves as a single gram.
func ngramJaccard(a, b string) float64 {
	gramsA := ngrams(a)
	gramsB := ngrams(b)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}
	intersection := 0
	for gram := range gramsA {
		if gramsB[gram] {
			intersection++
		}
	}
	union := len(gramsA) + len(gramsB) - intersection
	return float64(intersection) / float64(union)
}

func ngrams(text string) map[string]bool {
	grams := make(map[string]bool)
	runes := []rune(text)
	if len(runes) < ngramSize {
		if len(runes) > 0 {
			grams[string(runes)] = true
		}
		return grams
	}
	for i := 0; i+ngramSize <= len(runes); i++ {
		grams[string(runes[i:i+ngramSize])] = true
	}
	return grams
}
