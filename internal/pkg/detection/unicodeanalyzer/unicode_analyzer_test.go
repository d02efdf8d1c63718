package unicodeanalyzer

import (
	"testing"
)

// Verifies that mathematical bold letters are flagged and plain ASCII
// is not.
func TestHasFancy(t *testing.T) {
	analyzer := New()

	if !analyzer.HasFancy("\U0001D412\U0001D425\U0001D428\U0001D42D") { // 𝐒𝐥𝐨𝐭
		t.Error("Expected mathematical bold text to be flagged")
	}
	if analyzer.HasFancy("Slot gacor hari ini") {
		t.Error("Expected plain ASCII text not to be flagged")
	}
	if analyzer.HasFancy("") {
		t.Error("Expected empty text not to be flagged")
	}
}

// More than two combining marks flag a text even when no explicit fancy
// range matches.
func TestHasFancyCombiningMarks(t *testing.T) {
	analyzer := New()

	// Four strikethrough combining marks (U+0337).
	obfuscated := "s̷l̷o̷t̷"
	if !analyzer.HasFancy(obfuscated) {
		t.Error("Expected text with four combining marks to be flagged")
	}

	// Two accented characters are ordinary diacritics, not obfuscation.
	accented := "café déja"
	if analyzer.HasFancy(accented) {
		t.Error("Expected text with two combining marks not to be flagged")
	}
}

// Fancy code points map back to ASCII by offset within their range.
func TestNormalize(t *testing.T) {
	analyzer := New()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"mathematical bold", "\U0001D412\U0001D425\U0001D428\U0001D42D", "Slot"},
		{"fullwidth", "ＳＬＯＴ", "SLOT"},
		{"bold digits", "\U0001D7D3\U0001D7D2", "54"},
		{"circled", "Ⓢⓛⓞⓣ", "Slot"},
		{"plain passthrough", "slot gacor", "slot gacor"},
		{"combining marks stripped", "s̷l̷o̷t̷", "slot"},
	}
	for _, tc := range cases {
		if got := analyzer.Normalize(tc.input); got != tc.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

// Normalization is deterministic and idempotent.
func TestNormalizeIdempotent(t *testing.T) {
	analyzer := New()

	inputs := []string{
		"\U0001D412\U0001D425\U0001D428\U0001D42D gacor",
		"ＳＬＯＴ ｇａｃｏｒ",
		"plain ascii text",
		"s̷l̷o̷t̷",
		"",
	}
	for _, input := range inputs {
		once := analyzer.Normalize(input)
		twice := analyzer.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestDensity(t *testing.T) {
	analyzer := New()

	if got := analyzer.Density("\U0001D400b"); got != 0.5 {
		t.Errorf("Expected density 0.5, got %f", got)
	}
	if got := analyzer.Density("plain"); got != 0 {
		t.Errorf("Expected density 0 for plain text, got %f", got)
	}
	if got := analyzer.Density(""); got != 0 {
		t.Errorf("Expected density 0 for empty text, got %f", got)
	}
}

func TestStatistics(t *testing.T) {
	analyzer := New()

	stats := analyzer.Statistics("\U0001D412\U0001D425\U0001D428\U0001D42D gacor")
	if !stats.HasFancy {
		t.Error("Expected HasFancy to be true")
	}
	if stats.Count != 4 {
		t.Errorf("Expected 4 fancy code points, got %d", stats.Count)
	}
	if len(stats.Ranges) != 1 || stats.Ranges[0] != "mathematical bold" {
		t.Errorf("Expected ranges [mathematical bold], got %v", stats.Ranges)
	}
	if stats.Normalized != "Slot gacor" {
		t.Errorf("Expected normalized 'Slot gacor', got %q", stats.Normalized)
	}

	empty := analyzer.Statistics("")
	if empty.HasFancy || empty.Count != 0 || empty.Density != 0 {
		t.Errorf("Expected zero statistics for empty text, got %+v", empty)
	}
}
