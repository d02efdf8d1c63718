package contextanalyzer

import (
	"testing"
)

func TestAnalyzeContextEducational(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.AnalyzeContext("Tutorial yang sangat jelas, terima kasih", 60)
	if result.Context != "educational" {
		t.Errorf("Expected educational context, got %q", result.Context)
	}
	// -30 educational, -10 constructive sentiment.
	if result.AdjustedScore != 20 {
		t.Errorf("Expected adjusted score 20, got %d", result.AdjustedScore)
	}
	if !result.IsLegitimate {
		t.Error("Expected educational comment to be legitimate")
	}
}

func TestAnalyzeContextQuestion(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.AnalyzeContext("Berapa lama proses renderingnya?", 50)
	if result.Context != "question" {
		t.Errorf("Expected question context, got %q", result.Context)
	}
	if result.AdjustedScore != 30 {
		t.Errorf("Expected adjusted score 30, got %d", result.AdjustedScore)
	}
}

func TestAnalyzeContextWarning(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.AnalyzeContext("Hati-hati, itu penipuan!", 55)
	if result.Context != "warning" {
		t.Errorf("Expected warning context, got %q", result.Context)
	}
	if result.AdjustedScore != 30 {
		t.Errorf("Expected adjusted score 30, got %d", result.AdjustedScore)
	}
}

// Two or more promotional terms override any earlier context label and
// add instead of subtract.
func TestAnalyzeContextPromotionalOverride(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.AnalyzeContext("Tutorial menang gacor, daftar di situs kami", 60)
	if result.Context != "promotional" {
		t.Errorf("Expected promotional override, got %q", result.Context)
	}
	// -30 educational, +15 promotional, +10 promotional sentiment.
	if result.AdjustedScore != 55 {
		t.Errorf("Expected adjusted score 55, got %d", result.AdjustedScore)
	}
	if result.IsLegitimate {
		t.Error("Expected promotional comment not to be legitimate")
	}
}

func TestAnalyzeContextClamping(t *testing.T) {
	analyzer := New(DefaultKeywords())

	low := analyzer.AnalyzeContext("Tutorial bermanfaat, makasih", 10)
	if low.AdjustedScore != 0 {
		t.Errorf("Expected score clamped to 0, got %d", low.AdjustedScore)
	}

	high := analyzer.AnalyzeContext("daftar bonus gacor maxwin menang klik", 95)
	if high.AdjustedScore != 100 {
		t.Errorf("Expected score clamped to 100, got %d", high.AdjustedScore)
	}
}

func TestShouldWhitelist(t *testing.T) {
	analyzer := New(DefaultKeywords())

	cases := []struct {
		text string
		want bool
	}{
		// Question under 50 characters.
		{"Apakah video ini membahas cara kerja mesin?", true},
		// Educational without promotional framing.
		{"Penjelasan cara kerja algoritmanya sangat membantu", true},
		// Warning to other users.
		{"Waspada, banyak akun palsu di kolom komentar", true},
		// Promotional spam.
		{"Daftar sekarang, bonus gacor maxwin menang terus", false},
		// Neutral statement.
		{"Videonya diupload minggu lalu", false},
	}
	for _, tc := range cases {
		if got := analyzer.ShouldWhitelist(tc.text); got != tc.want {
			t.Errorf("ShouldWhitelist(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
