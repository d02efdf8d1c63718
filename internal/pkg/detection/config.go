package detection

import (
	"spamwatch/internal/pkg/detection/contextanalyzer"
	"spamwatch/internal/pkg/detection/patternanalyzer"
)

// Tunables and keyword tables for the detection engine. A Config is
// read-only once handed to a detector; to change behavior at runtime,
// build a new detector around a new Config.
type Config struct {
	// Minimum hybrid similarity for two comments to cluster in pass 1.
	PassOneThreshold float64
	// Minimum hybrid similarity between cluster leads to merge in pass 2.
	MergeThreshold float64
	// Edit-distance ceiling for fuzzy keyword matching.
	MaxFuzzyDistance int
	// Minimum score for a cluster to be reported as a campaign.
	SpamScoreThreshold int

	Pattern patternanalyzer.Keywords
	Context contextanalyzer.Keywords

	// Tokens treated as amount words during template extraction.
	AmountWords []string
	// Praise words used by the contextual reduction.
	PraiseWords []string
	// Correction markers used by the contextual reduction.
	CorrectionWords []string
}

func DefaultConfig() Config {
	return Config{
		PassOneThreshold:   0.4,
		MergeThreshold:     0.3,
		MaxFuzzyDistance:   2,
		SpamScoreThreshold: 50,
		Pattern:            patternanalyzer.DefaultKeywords(),
		Context:            contextanalyzer.DefaultKeywords(),
		AmountWords: []string{
			"juta", "ribu", "rb", "jt", "rupiah", "idr",
			"million", "thousand", "grand",
		},
		PraiseWords: []string{
			"keren", "mantap", "bagus", "seru", "kocak", "nice",
			"great", "amazing", "awesome", "love",
		},
		CorrectionWords: []string{
			"bukan", "salah", "maksudnya", "koreksi", "harusnya",
			"actually", "correction", "wrong",
		},
	}
}
