package models

// The scored result for a single cluster. Terminal object, never mutated
// after creation. A campaign exists only if Score >= the spam threshold
// after contextual reduction.
type CampaignScore struct {
	Score           int      `json:"score"`
	MemberCount     int      `json:"member_count"`
	Template        string   `json:"template"`
	Signals         []string `json:"signals"`
	CommentIDs      []string `json:"comment_ids"`
	Authors         []string `json:"authors"`
	AuthorDiversity float64  `json:"author_diversity"`
	SampleText      string   `json:"sample_text"`
}

// Aggregate counters for one analyzed batch.
type Summary struct {
	TotalComments    int `json:"total_comments"`
	ClustersFound    int `json:"clusters_found"`
	SpamCampaigns    int `json:"spam_campaigns"`
	AffectedComments int `json:"affected_comments"`
}

// The full result of analyzing one comment batch.
type BatchResult struct {
	Clusters      []Cluster       `json:"clusters"`
	SpamCampaigns []CampaignScore `json:"spam_campaigns"`
	Summary       Summary         `json:"summary"`
}

// A campaign formatted for human review and bulk indexing.
type CampaignReport struct {
	BatchID         string   `json:"batch_id"`
	Severity        string   `json:"severity"`
	Score           int      `json:"score"`
	MemberCount     int      `json:"member_count"`
	Template        string   `json:"template"`
	Signals         []string `json:"signals"`
	CommentIDs      []string `json:"comment_ids"`
	Authors         []string `json:"authors"`
	AuthorDiversity float64  `json:"author_diversity"`
	SampleText      string   `json:"sample_text"`
	SampleLanguage  string   `json:"sample_language"`
}
