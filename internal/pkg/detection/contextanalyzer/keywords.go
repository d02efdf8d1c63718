package contextanalyzer

// Keyword tables for communicative-context classification. Immutable once
// handed to an Analyzer.
type Keywords struct {
	Educational  []string
	Question     []string
	Warning      []string
	Promotional  []string
	Constructive []string
}

// Default context keywords, Indonesian first with English equivalents.
func DefaultKeywords() Keywords {
	return Keywords{
		Educational: []string{
			"tutorial", "belajar", "cara kerja", "penjelasan", "pembahasan",
			"edukasi", "materi", "how to", "explained", "learn",
		},
		Question: []string{
			"apakah", "bagaimana", "kenapa", "mengapa", "kapan", "gimana",
			"dimana", "berapa", "what", "how", "why", "when", "where",
		},
		Warning: []string{
			"hati-hati", "waspada", "awas", "penipuan", "jangan percaya",
			"scam", "phishing", "beware", "fake", "palsu",
		},
		Promotional: []string{
			"daftar", "join", "gabung", "promo", "bonus", "diskon",
			"gratis", "klik", "link", "situs", "deposit", "gacor",
			"maxwin", "menang", "register", "winrate",
		},
		Constructive: []string{
			"terima kasih", "makasih", "bermanfaat", "membantu", "bagus",
			"jelas banget", "thanks", "helpful", "well explained",
		},
	}
}
