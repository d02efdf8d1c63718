package patternanalyzer

import (
	"testing"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop() // Set up a no-op logger to avoid nil pointer dereferences in tests.
}

func TestAnalyzeKeywordCategories(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.Analyze("Dapatkan bonus besar, klik link di bio sekarang")
	if !result.HasMoney {
		t.Error("Expected money keywords to be detected")
	}
	if !result.HasUrgency {
		t.Error("Expected urgency keywords to be detected")
	}
	if !result.HasLinkPromotion {
		t.Error("Expected link promotion to be detected")
	}
	if len(result.Signals) < 3 {
		t.Errorf("Expected at least 3 signals, got %v", result.Signals)
	}
}

// Keyword matching uses word boundaries, not substring containment; "jp"
// must not match inside "jpeg".
func TestAnalyzeWordBoundaries(t *testing.T) {
	analyzer := New(DefaultKeywords())

	inside := analyzer.Analyze("kirim file jpeg format terbaru")
	if inside.HasMoney {
		t.Error("Expected 'jp' not to match inside 'jpeg'")
	}

	standalone := analyzer.Analyze("sudah wd dan jp kemarin")
	if !standalone.HasMoney {
		t.Error("Expected standalone 'jp' to match")
	}
}

func TestAnalyzeEmojiDensity(t *testing.T) {
	analyzer := New(DefaultKeywords())

	dense := analyzer.Analyze("\U0001F389\U0001F389\U0001F389 wow")
	if dense.EmojiDensity <= emojiDensityThreshold {
		t.Errorf("Expected emoji density above threshold, got %f", dense.EmojiDensity)
	}
	if !containsSignal(dense.Signals, "high emoji density") {
		t.Errorf("Expected high emoji density signal, got %v", dense.Signals)
	}

	plain := analyzer.Analyze("komentar biasa tanpa emoji")
	if plain.EmojiDensity != 0 {
		t.Errorf("Expected zero emoji density, got %f", plain.EmojiDensity)
	}
}

func TestAnalyzeCapsRatio(t *testing.T) {
	analyzer := New(DefaultKeywords())

	shouty := analyzer.Analyze("MENANG TERUS SETIAP HARI")
	if shouty.CapsRatio != 1.0 {
		t.Errorf("Expected caps ratio 1.0, got %f", shouty.CapsRatio)
	}
	if !containsSignal(shouty.Signals, "excessive capitalization") {
		t.Errorf("Expected excessive capitalization signal, got %v", shouty.Signals)
	}

	if got := analyzer.Analyze("123 !!!").CapsRatio; got != 0 {
		t.Errorf("Expected caps ratio 0 for letter-less input, got %f", got)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := New(DefaultKeywords())

	result := analyzer.Analyze("")
	if result.HasMoney || result.HasUrgency || result.HasLinkPromotion {
		t.Error("Expected no keyword flags for empty input")
	}
	if result.EmojiDensity != 0 || result.CapsRatio != 0 {
		t.Error("Expected zero ratios for empty input")
	}
	if len(result.Signals) != 0 {
		t.Errorf("Expected no signals for empty input, got %v", result.Signals)
	}
}

func containsSignal(signals []string, want string) bool {
	for _, signal := range signals {
		if signal == want {
			return true
		}
	}
	return false
}
