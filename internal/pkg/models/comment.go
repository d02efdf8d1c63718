package models

// A single user comment as fetched from the platform.
// Identity is by ID; Text is kept as written (not lower-cased).
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// A comment after the normalization pipeline has run.
// NormalizedText is lower-cased, Unicode-font-collapsed, leet-collapsed,
// punctuation-stripped per word and rejoined with single spaces.
type NormalizedComment struct {
	ID             string `json:"id"`
	OriginalText   string `json:"original_text"`
	NormalizedText string `json:"normalized_text"`
	Author         string `json:"author"`
}

// A group of at least two structurally similar comments.
// Indices are the original batch positions of the members.
type Cluster struct {
	Members []NormalizedComment `json:"members"`
	Indices []int               `json:"indices"`
}

// Optional channel-level context used for false-positive suppression.
type ChannelContext struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Optional video-level context, merged over the channel context.
type VideoContext struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// A batch submitted for analysis over HTTP or by the scan scheduler.
type AnalysisRequest struct {
	BatchID  string          `json:"batch_id"`
	Comments []Comment       `json:"comments"`
	Channel  *ChannelContext `json:"channel_context,omitempty"`
	Video    *VideoContext   `json:"video_context,omitempty"`
}
