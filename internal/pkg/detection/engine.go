package detection

import (
	"spamwatch/internal/pkg/detection/languagedetector"
	"spamwatch/internal/pkg/models"
)

// Severity labels for reported campaigns.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

// Stateless entry point composing the detector: batch analysis, report
// generation and a boolean campaign check. No independent logic beyond
// delegation and report formatting.
type Engine struct {
	detector  *ClusterDetector
	languages *languagedetector.Detector
}

func NewEngine(config Config) *Engine {
	return &Engine{
		detector:  NewClusterDetector(config),
		languages: languagedetector.New(),
	}
}

// Runs the full detection pipeline over one batch.
func (e *Engine) AnalyzeBatch(comments []models.Comment, channel *models.ChannelContext, video *models.VideoContext) models.BatchResult {
	return e.detector.AnalyzeBatch(comments, channel, video)
}

// Analyzes the batch and maps every campaign to a report with a severity
// label and the sample's language.
func (e *Engine) GenerateReport(request models.AnalysisRequest) []models.CampaignReport {
	result := e.AnalyzeBatch(request.Comments, request.Channel, request.Video)

	reports := make([]models.CampaignReport, 0, len(result.SpamCampaigns))
	for _, campaign := range result.SpamCampaigns {
		reports = append(reports, models.CampaignReport{
			BatchID:         request.BatchID,
			Severity:        severityFor(campaign.Score),
			Score:           campaign.Score,
			MemberCount:     campaign.MemberCount,
			Template:        campaign.Template,
			Signals:         campaign.Signals,
			CommentIDs:      campaign.CommentIDs,
			Authors:         campaign.Authors,
			AuthorDiversity: campaign.AuthorDiversity,
			SampleText:      campaign.SampleText,
			SampleLanguage:  e.languages.Tag(campaign.SampleText),
		})
	}
	return reports
}

// Reports whether the batch contains at least one spam campaign.
func (e *Engine) HasCampaign(comments []models.Comment) bool {
	result := e.AnalyzeBatch(comments, nil, nil)
	return len(result.SpamCampaigns) > 0
}

func severityFor(score int) string {
	switch {
	case score >= 90:
		return SeverityCritical
	case score >= 80:
		return SeverityHigh
	case score >= 70:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
