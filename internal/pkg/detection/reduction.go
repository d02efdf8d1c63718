package detection

import (
	"strings"
	"unicode/utf8"

	"spamwatch/internal/pkg/detection/patternanalyzer"
	"spamwatch/internal/pkg/models"
)

// Legitimacy reductions applied when channel or video context is known.
// These exist to suppress false positives from comments that merely repeat
// a short reaction phrase across many videos. Reductions stack and the
// result is floored at 0.
const (
	topicRelevanceReduction = 40
	educationalReduction    = 30
	shortReactionReduction  = 60
	shortPraiseReduction    = 55

	// Words shorter than this carry no topical information.
	topicWordMinLen = 4
)

func (d *ClusterDetector) applyContextReduction(
	score int,
	lead models.NormalizedComment,
	memberCount int,
	patternResult patternanalyzer.Result,
	channel *models.ChannelContext,
	video *models.VideoContext,
	signals *[]string,
) int {
	contextText := mergedContextText(channel, video)
	words := strings.Fields(lead.NormalizedText)
	lower := strings.ToLower(lead.OriginalText)
	spammy := patternResult.HasMoney || patternResult.HasUrgency || patternResult.HasLinkPromotion

	if topicRelevant(words, contextText) {
		score -= topicRelevanceReduction
		*signals = append(*signals, "matches the video topic")
	}

	contextResult := d.context.AnalyzeContext(lead.OriginalText, 0)
	correction := containsAny(lower, d.config.CorrectionWords)
	if contextResult.Context == "educational" || contextResult.Context == "question" || correction {
		score -= educationalReduction
		*signals = append(*signals, "educational or corrective reply")
	}

	if len(words) <= 3 && utf8.RuneCountInString(lead.NormalizedText) <= 20 && !spammy {
		score -= shortReactionReduction
		*signals = append(*signals, "very short genuine reaction")
	}

	praise := containsAny(lower, d.config.PraiseWords)
	if len(words) <= 5 && praise && !patternResult.HasMoney && !patternResult.HasLinkPromotion {
		score -= shortPraiseReduction
		*signals = append(*signals, "short enthusiastic praise")
	}

	if score < 0 {
		score = 0
	}
	return score
}

// All channel and video context fields folded into one lowercase string.
// Video context is listed after the channel so both contribute.
func mergedContextText(channel *models.ChannelContext, video *models.VideoContext) string {
	var parts []string
	if channel != nil {
		parts = append(parts, channel.Name, channel.Description, channel.Category)
		parts = append(parts, channel.Tags...)
	}
	if video != nil {
		parts = append(parts, video.Title, video.Description, video.Category)
		parts = append(parts, video.Tags...)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// A comment is topic-relevant when at least half of its content words
// (and no fewer than two) appear in the merged context text.
func topicRelevant(words []string, contextText string) bool {
	if contextText == "" {
		return false
	}
	content := 0
	matched := 0
	for _, word := range words {
		if utf8.RuneCountInString(word) < topicWordMinLen {
			continue
		}
		content++
		if strings.Contains(contextText, word) {
			matched++
		}
	}
	return content >= 2 && matched*2 >= content
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
