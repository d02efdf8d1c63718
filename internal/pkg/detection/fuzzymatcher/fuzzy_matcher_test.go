package fuzzymatcher

import (
	"testing"
)

// Separator, spacing and leet-speak obfuscations of the same word all
// normalize to the same string.
func TestNormalizeEquivalence(t *testing.T) {
	matcher := New()

	inputs := []string{"j.u.d.0.l", "J U D O L", "judol", "j-u-d-0-l", "J_u_d_o_L"}
	for _, input := range inputs {
		if got := matcher.Normalize(input); got != "judol" {
			t.Errorf("Normalize(%q) = %q, want 'judol'", input, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	matcher := New()

	inputs := []string{"sl0t g4cor", "M4XW1N!!!", "plain text", ""}
	for _, input := range inputs {
		once := matcher.Normalize(input)
		twice := matcher.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestIsSimilar(t *testing.T) {
	matcher := New()

	if !matcher.IsSimilar("sl0t", "slot", 2) {
		t.Error("Expected leet variant to be similar")
	}
	if !matcher.IsSimilar("gac0r", "gacorr", 2) {
		t.Error("Expected one-edit variant to be similar")
	}
	if matcher.IsSimilar("slot", "penipuan", 2) {
		t.Error("Expected unrelated words not to be similar")
	}
}

// The minimum-distance keyword wins; ties keep the first keyword in list
// order so results are deterministic.
func TestFindBestMatch(t *testing.T) {
	matcher := New()

	best := matcher.FindBestMatch("main j.u.d.0.l yuk", []string{"judol", "slot"}, 2)
	if !best.Found {
		t.Fatal("Expected a match")
	}
	if best.Match != "judol" {
		t.Errorf("Expected match 'judol', got %q", best.Match)
	}
	if best.Distance != 0 {
		t.Errorf("Expected distance 0 for contained keyword, got %d", best.Distance)
	}

	// Both keywords are equidistant from the text; the first wins.
	tie := matcher.FindBestMatch("gacar", []string{"gacir", "gacur"}, 2)
	if !tie.Found || tie.Match != "gacir" {
		t.Errorf("Expected first equidistant keyword 'gacir', got %+v", tie)
	}

	miss := matcher.FindBestMatch("komentar biasa saja", []string{"judol"}, 2)
	if miss.Found {
		t.Errorf("Expected no match beyond max distance, got %+v", miss)
	}
	if miss.Distance != -1 {
		t.Errorf("Expected distance -1 on miss, got %d", miss.Distance)
	}
}

func TestGetStatistics(t *testing.T) {
	matcher := New()

	stats := matcher.GetStatistics("daftar sl0t gacor sekarang", []string{"slot", "gacor", "bonus"})
	if !stats.HasMatch {
		t.Fatal("Expected at least one keyword match")
	}
	if stats.MatchCount != 2 {
		t.Errorf("Expected 2 matches, got %d", stats.MatchCount)
	}
	if stats.TotalWords != 4 {
		t.Errorf("Expected 4 words, got %d", stats.TotalWords)
	}
	if stats.Confidence <= 0 || stats.Confidence > 1 {
		t.Errorf("Expected confidence in (0,1], got %f", stats.Confidence)
	}

	empty := matcher.GetStatistics("komentar biasa", []string{"judol"})
	if empty.HasMatch || empty.MatchCount != 0 || empty.Confidence != 0 {
		t.Errorf("Expected zero statistics without matches, got %+v", empty)
	}
}

// Long inputs switch to the approximate distance, which must still treat
// identical strings as distance zero.
func TestDistanceLongStrings(t *testing.T) {
	matcher := New()

	long := ""
	for i := 0; i < 60; i++ {
		long += "gacor"
	}
	if got := matcher.Distance(long, long); got != 0 {
		t.Errorf("Expected distance 0 for identical long strings, got %d", got)
	}
	if got := matcher.Distance(long, ""); got == 0 {
		t.Error("Expected nonzero distance between long string and empty string")
	}
}
