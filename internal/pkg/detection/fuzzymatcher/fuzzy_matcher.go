package fuzzymatcher

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Default edit-distance ceiling for keyword matching.
const DefaultMaxDistance = 2

// Above this length true edit distance is too expensive and exactness is
// unnecessary; an approximate ratio-based distance is used instead.
const exactDistanceLimit = 255

// Characters spammers insert between letters to break up keywords.
const separators = ".-_|*+/\\ "

// Leet-speak digits and symbols folded back to the letters they mimic.
var leetMap = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'8': 'b',
	'@': 'a',
	'$': 's',
}

// Normalizes leet-speak and separator obfuscation and computes
// edit-distance similarity between short strings and keywords.
// Stateless and safe for concurrent use.
type Matcher struct{}

// A keyword that matched a text within the distance ceiling.
type Match struct {
	Keyword  string `json:"keyword"`
	Distance int    `json:"distance"`
}

// The closest keyword for a text, if any was within the ceiling.
type BestMatch struct {
	Match      string `json:"match"`
	Distance   int    `json:"distance"`
	Normalized string `json:"normalized"`
	Found      bool   `json:"found"`
}

// Aggregate keyword-match statistics for a text.
type Statistics struct {
	HasMatch   bool    `json:"has_match"`
	MatchCount int     `json:"match_count"`
	TotalWords int     `json:"total_words"`
	Matches    []Match `json:"matches"`
	Confidence float64 `json:"confidence"`
}

func New() *Matcher {
	return &Matcher{}
}

// Collapses obfuscation so that "j.u.d.0.l", "J U D O L" and "judol" all
// normalize to the same string: lower-case, drop separators, fold
// leet-speak, then drop anything that is not a-z or 0-9. Idempotent.
func (m *Matcher) Normalize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if strings.ContainsRune(separators, r) {
			continue
		}
		if sub, ok := leetMap[r]; ok {
			r = sub
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Reports whether two strings are within maxDistance edits of each other
// after normalization.
func (m *Matcher) IsSimilar(a, b string, maxDistance int) bool {
	return m.Distance(m.Normalize(a), m.Normalize(b)) <= maxDistance
}

// Edit distance between two already-normalized strings. Exact Levenshtein
// up to exactDistanceLimit runes, approximate beyond that.
func (m *Matcher) Distance(a, b string) int {
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 0
	}
	if maxLen <= exactDistanceLimit {
		return levenshtein.ComputeDistance(a, b)
	}
	return int(math.Round(float64(maxLen) * (1 - similarityRatio(a, b))))
}

// Scans a keyword list and keeps the minimum-distance match. A keyword
// contained verbatim in the normalized text counts as distance zero; ties
// keep the first keyword encountered so results are deterministic.
func (m *Matcher) FindBestMatch(text string, keywords []string, maxDistance int) BestMatch {
	normalized := m.Normalize(text)
	candidates := m.candidates(text, normalized)

	best := BestMatch{Normalized: normalized, Distance: maxDistance + 1}
	for _, keyword := range keywords {
		distance := m.keywordDistance(normalized, candidates, keyword)
		if distance < best.Distance {
			best.Match = keyword
			best.Distance = distance
			best.Found = true
		}
	}
	if !best.Found || best.Distance > maxDistance {
		return BestMatch{Normalized: normalized, Distance: -1}
	}
	return best
}

// Computes per-keyword match statistics with the default distance ceiling.
func (m *Matcher) GetStatistics(text string, keywords []string) Statistics {
	normalized := m.Normalize(text)
	candidates := m.candidates(text, normalized)
	totalWords := len(strings.Fields(text))

	var matches []Match
	distanceSum := 0
	for _, keyword := range keywords {
		distance := m.keywordDistance(normalized, candidates, keyword)
		if distance <= DefaultMaxDistance {
			matches = append(matches, Match{Keyword: keyword, Distance: distance})
			distanceSum += distance
		}
	}

	stats := Statistics{
		MatchCount: len(matches),
		TotalWords: totalWords,
		Matches:    matches,
	}
	if len(matches) == 0 {
		return stats
	}
	stats.HasMatch = true

	matchRatio := 0.0
	if totalWords > 0 {
		matchRatio = float64(len(matches)) / float64(totalWords)
		if matchRatio > 1 {
			matchRatio = 1
		}
	}
	averageDistance := float64(distanceSum) / float64(len(matches))
	inverseDistance := 1 / (1 + averageDistance)

	// 30% match ratio, 70% closeness of the matches.
	confidence := 0.3*matchRatio + 0.7*inverseDistance
	stats.Confidence = math.Round(confidence*100) / 100
	return stats
}

// Comparison candidates for a text: the whole normalized string plus each
// normalized word. Whole-string comparison catches spaced-out obfuscation
// ("J U D O L"); per-word comparison catches a keyword buried in a longer
// comment.
func (m *Matcher) candidates(text, normalized string) []string {
	candidates := []string{normalized}
	for _, word := range strings.Fields(text) {
		if nw := m.Normalize(word); nw != "" && nw != normalized {
			candidates = append(candidates, nw)
		}
	}
	return candidates
}

// Minimum distance between a keyword and any candidate form of the text.
func (m *Matcher) keywordDistance(normalized string, candidates []string, keyword string) int {
	normalizedKeyword := m.Normalize(keyword)
	if normalizedKeyword == "" {
		return DefaultMaxDistance + 1
	}
	if strings.Contains(normalized, normalizedKeyword) {
		return 0
	}
	best := -1
	for _, candidate := range candidates {
		distance := m.Distance(candidate, normalizedKeyword)
		if best == -1 || distance < best {
			best = distance
		}
	}
	return best
}

// Cheap similarity ratio for long strings: the share of code points the
// two strings have in common, counted as a multiset.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	countsA := make(map[rune]int)
	lenA := 0
	for _, r := range a {
		countsA[r]++
		lenA++
	}
	common := 0
	lenB := 0
	for _, r := range b {
		lenB++
		if countsA[r] > 0 {
			countsA[r]--
			common++
		}
	}
	if lenA+lenB == 0 {
		return 1
	}
	return 2 * float64(common) / float64(lenA+lenB)
}
