package contextanalyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

// Score adjustments per context. Promotional framing dominates: it adds
// on top of any earlier reduction and takes over the context label.
const (
	educationalAdjustment = -30
	questionAdjustment    = -20
	warningAdjustment     = -25
	promotionalAdjustment = 15
	sentimentAdjustment   = 10

	// Matched promotional terms needed to call a text promotional.
	promotionalIndicatorMin = 2

	// Texts shorter than this that ask a question are whitelisted.
	whitelistQuestionMaxLen = 50
)

// Classifies a comment's communicative context (educational, question,
// warning, promotional) and converts it into a score adjustment.
type Analyzer struct {
	keywords     Keywords
	educational  *ahocorasick.Matcher
	question     *ahocorasick.Matcher
	warning      *ahocorasick.Matcher
	promotional  *ahocorasick.Matcher
	constructive *ahocorasick.Matcher
}

// The contextual adjustment for one text.
type Result struct {
	AdjustedScore int      `json:"adjusted_score"`
	Context       string   `json:"context"`
	IsLegitimate  bool     `json:"is_legitimate"`
	Signals       []string `json:"signals"`
}

func New(keywords Keywords) *Analyzer {
	return &Analyzer{
		keywords:     keywords,
		educational:  newMatcher(keywords.Educational),
		question:     newMatcher(keywords.Question),
		warning:      newMatcher(keywords.Warning),
		promotional:  newMatcher(keywords.Promotional),
		constructive: newMatcher(keywords.Constructive),
	}
}

func newMatcher(keywords []string) *ahocorasick.Matcher {
	patterns := make([][]byte, len(keywords))
	for i, keyword := range keywords {
		patterns[i] = []byte(strings.ToLower(keyword))
	}
	return ahocorasick.NewMatcher(patterns)
}

// Number of distinct keywords from the matcher's table found in the text.
func matchCount(matcher *ahocorasick.Matcher, lower string) int {
	return len(matcher.Match([]byte(lower)))
}

// Classifies the text and applies the resulting adjustment to
// currentScore, clamped to [0,100].
//
// Precedence: educational > question-without-promotion > warning. A
// promotional indicator (>= promotionalIndicatorMin matched terms)
// overrides the label even when an earlier context matched.
func (a *Analyzer) AnalyzeContext(text string, currentScore int) Result {
	lower := strings.ToLower(text)

	educationalCount := matchCount(a.educational, lower)
	questionCount := matchCount(a.question, lower)
	warningCount := matchCount(a.warning, lower)
	promotionalCount := matchCount(a.promotional, lower)
	constructiveCount := matchCount(a.constructive, lower)
	asksQuestion := questionCount > 0 || strings.Contains(text, "?")

	adjustment := 0
	context := "neutral"
	var signals []string

	switch {
	case educationalCount > 0:
		context = "educational"
		adjustment += educationalAdjustment
		signals = append(signals, "educational context")
	case asksQuestion && promotionalCount == 0:
		context = "question"
		adjustment += questionAdjustment
		signals = append(signals, "question without promotion")
	case warningCount > 0:
		context = "warning"
		adjustment += warningAdjustment
		signals = append(signals, "warning to other users")
	}

	if promotionalCount >= promotionalIndicatorMin {
		context = "promotional"
		adjustment += promotionalAdjustment
		signals = append(signals, "promotional indicators present")
	}

	// Sentiment pass: constructive vs promotional word counts.
	if constructiveCount > promotionalCount {
		adjustment -= sentimentAdjustment
		signals = append(signals, "constructive sentiment")
	} else if promotionalCount > constructiveCount {
		adjustment += sentimentAdjustment
		signals = append(signals, "promotional sentiment")
	}

	adjusted := currentScore + adjustment
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}

	legitimate := promotionalCount < promotionalIndicatorMin &&
		(context == "educational" || context == "question" || context == "warning")

	return Result{
		AdjustedScore: adjusted,
		Context:       context,
		IsLegitimate:  legitimate,
		Signals:       signals,
	}
}

// Hard whitelist predicate, stricter than the numeric adjustment: true for
// educational texts without promotional framing, warnings, and short
// questions.
func (a *Analyzer) ShouldWhitelist(text string) bool {
	lower := strings.ToLower(text)

	promotionalCount := matchCount(a.promotional, lower)
	if matchCount(a.educational, lower) > 0 && promotionalCount < promotionalIndicatorMin {
		return true
	}
	if matchCount(a.warning, lower) > 0 {
		return true
	}
	return utf8.RuneCountInString(text) < whitelistQuestionMaxLen &&
		strings.Contains(text, "?")
}
