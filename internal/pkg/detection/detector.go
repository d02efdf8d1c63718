package detection

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/detection/contextanalyzer"
	"spamwatch/internal/pkg/detection/fuzzymatcher"
	"spamwatch/internal/pkg/detection/patternanalyzer"
	"spamwatch/internal/pkg/detection/unicodeanalyzer"
	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/metrics"
	"spamwatch/internal/pkg/models"
)

// Score contributions. Each is additive and individually capped; the final
// score is clamped to [0,100].
const (
	templateBaseScore          = 30
	templatePlaceholderPenalty = 5
	moneyScore                 = 10
	urgencyScore               = 10
	linkScore                  = 15
	emojiScore                 = 5
	capsScore                  = 5
	unicodeObfuscationBonus    = 15

	lowDiversityBonus       = 25
	highDiversityBonus      = 20
	lowDiversityThreshold   = 0.3
	highDiversityThreshold  = 0.8
	highDiversityMinMembers = 8
)

// Progressive severity bands for cluster size.
func clusterSizeScore(memberCount int) int {
	switch {
	case memberCount >= 15:
		return 60
	case memberCount >= 10:
		return 50
	case memberCount >= 5:
		return 40
	case memberCount >= 3:
		return 30
	default:
		return 25
	}
}

// Orchestrates the detection pipeline: normalizes every comment, clusters
// similar comments in two passes, extracts a template per cluster, scores
// each cluster and applies contextual reduction. Stateless across batches.
type ClusterDetector struct {
	config      Config
	unicode     *unicodeanalyzer.Analyzer
	fuzzy       *fuzzymatcher.Matcher
	patterns    *patternanalyzer.Analyzer
	context     *contextanalyzer.Analyzer
	amountWords map[string]bool
}

// A cluster under construction; positions are original batch positions.
type cluster struct {
	members   []models.NormalizedComment
	positions []int
}

func NewClusterDetector(config Config) *ClusterDetector {
	amountWords := make(map[string]bool, len(config.AmountWords))
	for _, word := range config.AmountWords {
		amountWords[strings.ToLower(word)] = true
	}
	return &ClusterDetector{
		config:      config,
		unicode:     unicodeanalyzer.New(),
		fuzzy:       fuzzymatcher.New(),
		patterns:    patternanalyzer.New(config.Pattern),
		context:     contextanalyzer.New(config.Context),
		amountWords: amountWords,
	}
}

// Runs the full pipeline over one batch. An empty batch is a valid input
// and yields an empty result. Comments without text are skipped, never
// rejected; no error escapes this method.
func (d *ClusterDetector) AnalyzeBatch(comments []models.Comment, channel *models.ChannelContext, video *models.VideoContext) models.BatchResult {
	start := time.Now()

	result := models.BatchResult{
		Clusters:      []models.Cluster{},
		SpamCampaigns: []models.CampaignScore{},
	}
	result.Summary.TotalComments = len(comments)
	if len(comments) == 0 {
		return result
	}

	normalized := d.normalizeComments(comments)
	clusters := d.clusterPassOne(normalized)
	clusters = d.mergeClusters(clusters)

	affected := 0
	for _, c := range clusters {
		result.Clusters = append(result.Clusters, models.Cluster{
			Members: c.members,
			Indices: c.positions,
		})

		campaign := d.scoreCluster(c, channel, video)
		metrics.CampaignScoreHistogram.Observe(float64(campaign.Score))

		if campaign.Score < d.config.SpamScoreThreshold {
			continue
		}
		if d.context.ShouldWhitelist(c.members[0].OriginalText) {
			metrics.WhitelistSuppressions.Inc()
			logger.Log.Debug("Whitelisted cluster suppressed",
				zap.String("sample", c.members[0].OriginalText),
				zap.Int("score", campaign.Score))
			continue
		}

		result.SpamCampaigns = append(result.SpamCampaigns, campaign)
		affected += campaign.MemberCount
		metrics.CampaignsDetected.Inc()
	}

	result.Summary.ClustersFound = len(result.Clusters)
	result.Summary.SpamCampaigns = len(result.SpamCampaigns)
	result.Summary.AffectedComments = affected

	metrics.BatchesAnalyzed.Inc()
	metrics.CommentsProcessed.Add(float64(len(comments)))
	metrics.AnalysisLatency.Observe(time.Since(start).Seconds())

	logger.Log.Debug("Batch analyzed",
		zap.Int("comments", len(comments)),
		zap.Int("clusters", len(result.Clusters)),
		zap.Int("campaigns", len(result.SpamCampaigns)))

	return result
}

// Applies the full normalization pipeline to every comment that has text.
// Batch positions are preserved so cluster indices refer to the original
// input.
func (d *ClusterDetector) normalizeComments(comments []models.Comment) []indexedComment {
	normalized := make([]indexedComment, 0, len(comments))
	for position, comment := range comments {
		if comment.Text == "" {
			logger.Log.Debug("Skipping comment without text",
				zap.String("comment_id", comment.ID))
			continue
		}
		normalized = append(normalized, indexedComment{
			comment: models.NormalizedComment{
				ID:             comment.ID,
				OriginalText:   comment.Text,
				NormalizedText: d.normalizeText(comment.Text),
				Author:         comment.Author,
			},
			position: position,
		})
	}
	return normalized
}

type indexedComment struct {
	comment  models.NormalizedComment
	position int
}

// Unicode font collapse, then per word: strip punctuation, fold leet-speak
// and separators. Words are rejoined with single spaces. Deterministic and
// idempotent.
func (d *ClusterDetector) normalizeText(text string) string {
	collapsed := d.unicode.Normalize(text)

	var words []string
	for _, word := range strings.Fields(collapsed) {
		stripped := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
		folded := d.fuzzy.Normalize(stripped)
		if folded != "" {
			words = append(words, folded)
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// Pass 1: strict greedy clustering. Each comment joins at most one
// cluster; a seed that attracts no partner is discarded and never
// reconsidered. Clusters always have at least two members.
func (d *ClusterDetector) clusterPassOne(comments []indexedComment) []*cluster {
	var clusters []*cluster
	clustered := make([]bool, len(comments))

	for i := range comments {
		if clustered[i] || comments[i].comment.NormalizedText == "" {
			continue
		}
		candidate := &cluster{
			members:   []models.NormalizedComment{comments[i].comment},
			positions: []int{comments[i].position},
		}
		for j := i + 1; j < len(comments); j++ {
			if clustered[j] || comments[j].comment.NormalizedText == "" {
				continue
			}
			similarity := d.hybridSimilarity(
				comments[i].comment.NormalizedText,
				comments[j].comment.NormalizedText,
			)
			if similarity >= d.config.PassOneThreshold {
				candidate.members = append(candidate.members, comments[j].comment)
				candidate.positions = append(candidate.positions, comments[j].position)
				clustered[j] = true
			}
		}
		if len(candidate.members) >= 2 {
			clustered[i] = true
			clusters = append(clusters, candidate)
		}
	}
	return clusters
}

// Pass 2: merge clusters whose lead comments are loosely related. This
// recovers campaigns where only a shared brand or keyword token links
// otherwise-dissimilar variants. A cluster is consumed at most once;
// chains through a consumed cluster are not re-evaluated.
func (d *ClusterDetector) mergeClusters(clusters []*cluster) []*cluster {
	consumed := make([]bool, len(clusters))

	for a := range clusters {
		if consumed[a] {
			continue
		}
		for b := a + 1; b < len(clusters); b++ {
			if consumed[b] {
				continue
			}
			similarity := d.hybridSimilarity(
				clusters[a].members[0].NormalizedText,
				clusters[b].members[0].NormalizedText,
			)
			if similarity >= d.config.MergeThreshold {
				clusters[a].members = append(clusters[a].members, clusters[b].members...)
				clusters[a].positions = append(clusters[a].positions, clusters[b].positions...)
				consumed[b] = true
			}
		}
	}

	merged := make([]*cluster, 0, len(clusters))
	for i, c := range clusters {
		if !consumed[i] {
			merged = append(merged, c)
		}
	}
	return merged
}

var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// Derives a descriptive template from a normalized text: digit runs become
// {num}, amount words become {amount}. Purely descriptive, not used for
// matching.
func (d *ClusterDetector) extractTemplate(text string) string {
	template := digitRunPattern.ReplaceAllString(text, "{num}")
	fields := strings.Fields(template)
	for i, field := range fields {
		if d.amountWords[field] {
			fields[i] = "{amount}"
		}
	}
	return strings.Join(fields, " ")
}

// Additive scoring over the cluster's signals, then the contextual
// adjustment and, when channel or video context is supplied, the
// legitimacy reduction.
func (d *ClusterDetector) scoreCluster(c *cluster, channel *models.ChannelContext, video *models.VideoContext) models.CampaignScore {
	lead := c.members[0]
	memberCount := len(c.members)
	var signals []string

	score := clusterSizeScore(memberCount)
	signals = append(signals, fmt.Sprintf("cluster of %d similar comments", memberCount))

	template := d.extractTemplate(lead.NormalizedText)
	placeholders := strings.Count(template, "{num}") + strings.Count(template, "{amount}")
	templateScore := templateBaseScore - templatePlaceholderPenalty*placeholders
	if templateScore < 0 {
		templateScore = 0
	}
	score += templateScore
	if placeholders == 0 {
		signals = append(signals, "rigid template reused verbatim")
	}

	patternResult := d.patterns.Analyze(lead.OriginalText)
	if patternResult.HasMoney {
		score += moneyScore
	}
	if patternResult.HasUrgency {
		score += urgencyScore
	}
	if patternResult.HasLinkPromotion {
		score += linkScore
	}
	if patternResult.EmojiDensity > 0.15 {
		score += emojiScore
	}
	if patternResult.CapsRatio > 0.5 {
		score += capsScore
	}
	signals = append(signals, patternResult.Signals...)

	authors := uniqueAuthors(c.members)
	diversity := float64(len(authors)) / float64(memberCount)
	if diversity < lowDiversityThreshold {
		score += lowDiversityBonus
		signals = append(signals, "single author posting repeatedly")
	} else if diversity > highDiversityThreshold && memberCount >= highDiversityMinMembers {
		// Many accounts pushing one template is just as suspicious as one.
		score += highDiversityBonus
		signals = append(signals, "coordinated accounts pushing one template")
	}

	for _, member := range c.members {
		if d.unicode.HasFancy(member.OriginalText) {
			score += unicodeObfuscationBonus
			signals = append(signals, "fancy unicode obfuscation")
			break
		}
	}

	contextResult := d.context.AnalyzeContext(lead.OriginalText, score)
	score = contextResult.AdjustedScore
	signals = append(signals, contextResult.Signals...)

	if channel != nil || video != nil {
		score = d.applyContextReduction(score, lead, memberCount, patternResult, channel, video, &signals)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	commentIDs := make([]string, len(c.members))
	for i, member := range c.members {
		commentIDs[i] = member.ID
	}

	return models.CampaignScore{
		Score:           score,
		MemberCount:     memberCount,
		Template:        template,
		Signals:         signals,
		CommentIDs:      commentIDs,
		Authors:         authors,
		AuthorDiversity: diversity,
		SampleText:      lead.OriginalText,
	}
}

// Unique authors in first-seen order.
func uniqueAuthors(members []models.NormalizedComment) []string {
	seen := make(map[string]bool, len(members))
	var authors []string
	for _, member := range members {
		if !seen[member.Author] {
			seen[member.Author] = true
			authors = append(authors, member.Author)
		}
	}
	return authors
}
