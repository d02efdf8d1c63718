package unicodeanalyzer

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Maximum number of combining-mark code points a legitimate comment is
// expected to carry. Beyond this the text is flagged even when no explicit
// fancy range matches, which generalizes detection to obfuscation schemes
// the range table does not enumerate.
const maxCombiningMarks = 2

// Detects and normalizes fancy Unicode alphabets and combining-mark
// obfuscation used to evade keyword filters. Stateless and safe for
// concurrent use.
type Analyzer struct{}

// Statistics describes the fancy-Unicode content of a text.
type Statistics struct {
	HasFancy   bool     `json:"has_fancy"`
	Count      int      `json:"count"`
	Density    float64  `json:"density"`
	Ranges     []string `json:"ranges"`
	Normalized string   `json:"normalized"`
}

func New() *Analyzer {
	return &Analyzer{}
}

// Reports whether the text contains fancy Unicode code points or an
// excess of combining marks.
func (a *Analyzer) HasFancy(text string) bool {
	combining := 0
	for _, r := range text {
		if lookupRange(r) != nil {
			return true
		}
		if isCombiningMark(r) {
			combining++
			if combining > maxCombiningMarks {
				return true
			}
		}
	}
	return false
}

// Returns the share of code points that belong to a fancy range.
func (a *Analyzer) Density(text string) float64 {
	total := 0
	fancy := 0
	for _, r := range text {
		total++
		if lookupRange(r) != nil {
			fancy++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(fancy) / float64(total)
}

// Maps every fancy code point back to its ASCII equivalent and strips
// combining marks and invisible format characters. Idempotent: plain ASCII
// passes through unchanged.
func (a *Analyzer) Normalize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if fr := lookupRange(r); fr != nil {
			builder.WriteRune(fr.toASCII(r))
			continue
		}
		builder.WriteRune(r)
	}
	stripper := stripperPool.Get().(transform.Transformer)
	result, _, err := transform.String(stripper, builder.String())
	stripper.Reset()
	stripperPool.Put(stripper)
	if err != nil {
		// Strip failures keep the range-mapped text rather than dropping it.
		return builder.String()
	}
	return result
}

// Returns the full analysis for a text in a single pass.
func (a *Analyzer) Statistics(text string) Statistics {
	total := 0
	fancy := 0
	combining := 0
	var rangeNames []string
	seen := make(map[string]bool)

	for _, r := range text {
		total++
		if fr := lookupRange(r); fr != nil {
			fancy++
			if !seen[fr.name] {
				seen[fr.name] = true
				rangeNames = append(rangeNames, fr.name)
			}
			continue
		}
		if isCombiningMark(r) {
			combining++
		}
	}

	density := 0.0
	if total > 0 {
		density = float64(fancy) / float64(total)
	}

	return Statistics{
		HasFancy:   fancy > 0 || combining > maxCombiningMarks,
		Count:      fancy,
		Density:    density,
		Ranges:     rangeNames,
		Normalized: a.Normalize(text),
	}
}

// Pool of transformer chains that remove combining marks and format
// characters (zero-width joiners, variation selectors and similar
// invisibles). Chains carry internal buffers, so they are pooled rather
// than shared.
var stripperPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Me)),
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r)
}
