package patternanalyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"
	"go.uber.org/zap"

	"spamwatch/internal/pkg/logger"
)

// Signal thresholds. Short spam comments routinely exceed both; organic
// comments rarely do.
const (
	emojiDensityThreshold = 0.15
	capsRatioThreshold    = 0.5
)

// Detects lexical spam signals: money, urgency and link-promotion
// keywords, emoji density and caps ratio.
//
// Keyword confirmation uses word-boundary regexes, not substring checks;
// a substring check would match "jp" inside "jpeg" and similar. The
// Aho-Corasick matcher is only a prefilter so that the per-keyword regex
// runs on candidate texts alone.
type Analyzer struct {
	keywords  Keywords
	prefilter *ahocorasick.Matcher
	all       []string
	category  map[string]int
	patterns  map[string]*regexp.Regexp
}

const (
	categoryMoney = iota
	categoryUrgency
	categoryLink
)

// The lexical signals found in one text.
type Result struct {
	HasMoney         bool     `json:"has_money"`
	HasUrgency       bool     `json:"has_urgency"`
	HasLinkPromotion bool     `json:"has_link_promotion"`
	EmojiDensity     float64  `json:"emoji_density"`
	CapsRatio        float64  `json:"caps_ratio"`
	Signals          []string `json:"signals"`
}

// Creates an analyzer with precompiled word-boundary patterns for every
// keyword. A keyword that fails to compile is dropped with a warning
// rather than failing the analyzer; moderation must fail safe.
func New(keywords Keywords) *Analyzer {
	analyzer := &Analyzer{
		keywords: keywords,
		category: make(map[string]int),
		patterns: make(map[string]*regexp.Regexp),
	}

	add := func(list []string, category int) {
		for _, keyword := range list {
			lower := strings.ToLower(keyword)
			pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(lower) + `\b`)
			if err != nil {
				logger.Log.Warn("Dropping unparsable keyword pattern",
					zap.String("keyword", keyword), zap.Error(err))
				continue
			}
			analyzer.all = append(analyzer.all, lower)
			analyzer.category[lower] = category
			analyzer.patterns[lower] = pattern
		}
	}
	add(keywords.Money, categoryMoney)
	add(keywords.Urgency, categoryUrgency)
	add(keywords.LinkPromotion, categoryLink)

	patterns := make([][]byte, len(analyzer.all))
	for i, keyword := range analyzer.all {
		patterns[i] = []byte(keyword)
	}
	analyzer.prefilter = ahocorasick.NewMatcher(patterns)

	return analyzer
}

// Analyzes a text for lexical spam signals.
func (a *Analyzer) Analyze(text string) Result {
	var result Result
	if text == "" {
		return result
	}

	lower := strings.ToLower(text)

	// Aho-Corasick narrows the keyword set, the regex confirms the word
	// boundary.
	for _, hit := range a.prefilter.Match([]byte(lower)) {
		keyword := a.all[hit]
		pattern, ok := a.patterns[keyword]
		if !ok || !pattern.MatchString(lower) {
			continue
		}
		switch a.category[keyword] {
		case categoryMoney:
			result.HasMoney = true
		case categoryUrgency:
			result.HasUrgency = true
		case categoryLink:
			result.HasLinkPromotion = true
		}
	}

	result.EmojiDensity = emojiDensity(text)
	result.CapsRatio = capsRatio(text)

	if result.HasMoney {
		result.Signals = append(result.Signals, "money keywords detected")
	}
	if result.HasUrgency {
		result.Signals = append(result.Signals, "urgency keywords detected")
	}
	if result.HasLinkPromotion {
		result.Signals = append(result.Signals, "link promotion detected")
	}
	if result.EmojiDensity > emojiDensityThreshold {
		result.Signals = append(result.Signals, "high emoji density")
	}
	if result.CapsRatio > capsRatioThreshold {
		result.Signals = append(result.Signals, "excessive capitalization")
	}

	return result
}

// Emoji Unicode blocks. Coarse on purpose; a stray dingbat in organic text
// stays far below the density threshold.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F1E6, 0x1F1FF}, // regional indicators
}

// Share of code points that fall in an emoji block; 0 for empty input.
func emojiDensity(text string) float64 {
	total := 0
	emoji := 0
	for _, r := range text {
		total++
		for _, block := range emojiRanges {
			if r >= block[0] && r <= block[1] {
				emoji++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(emoji) / float64(total)
}

// Share of letters that are uppercase; non-letters are excluded from the
// denominator and letter-less input yields 0.
func capsRatio(text string) float64 {
	letters := 0
	upper := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
