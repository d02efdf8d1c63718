package unicodeanalyzer

// How the offsets inside a fancy range map back to ASCII.
type rangeKind int

const (
	// 52 letters: offsets 0-25 are A-Z, offsets 26-51 are a-z.
	kindLetters rangeKind = iota
	// 26 uppercase letters only.
	kindUpper
	// 26 lowercase letters only.
	kindLower
	// 10 digits: offsets 0-9 are 0-9.
	kindDigits
)

type fancyRange struct {
	lo   rune
	hi   rune
	kind rangeKind
	name string
}

// Unicode ranges used by spammers to dress Latin text in "fancy" alphabets
// that slip past literal keyword filters. Legitimate comments never use
// these, so membership is treated as a near-certain spam signal.
var fancyRanges = []fancyRange{
	{0x1D400, 0x1D433, kindLetters, "mathematical bold"},
	{0x1D434, 0x1D467, kindLetters, "mathematical italic"},
	{0x1D468, 0x1D49B, kindLetters, "mathematical bold italic"},
	{0x1D49C, 0x1D4CF, kindLetters, "mathematical script"},
	{0x1D4D0, 0x1D503, kindLetters, "mathematical bold script"},
	{0x1D504, 0x1D537, kindLetters, "mathematical fraktur"},
	{0x1D538, 0x1D56B, kindLetters, "mathematical double-struck"},
	{0x1D56C, 0x1D59F, kindLetters, "mathematical bold fraktur"},
	{0x1D5A0, 0x1D5D3, kindLetters, "mathematical sans-serif"},
	{0x1D5D4, 0x1D607, kindLetters, "mathematical sans-serif bold"},
	{0x1D608, 0x1D63B, kindLetters, "mathematical sans-serif italic"},
	{0x1D63C, 0x1D66F, kindLetters, "mathematical sans-serif bold italic"},
	{0x1D670, 0x1D6A3, kindLetters, "mathematical monospace"},
	{0x1D7CE, 0x1D7D7, kindDigits, "mathematical bold digits"},
	{0x1D7D8, 0x1D7E1, kindDigits, "mathematical double-struck digits"},
	{0x1D7E2, 0x1D7EB, kindDigits, "mathematical sans-serif digits"},
	{0x1D7EC, 0x1D7F5, kindDigits, "mathematical sans-serif bold digits"},
	{0x1D7F6, 0x1D7FF, kindDigits, "mathematical monospace digits"},
	{0xFF21, 0xFF3A, kindUpper, "fullwidth uppercase"},
	{0xFF41, 0xFF5A, kindLower, "fullwidth lowercase"},
	{0xFF10, 0xFF19, kindDigits, "fullwidth digits"},
	{0x24B6, 0x24CF, kindUpper, "circled uppercase"},
	{0x24D0, 0x24E9, kindLower, "circled lowercase"},
	{0x1F130, 0x1F149, kindUpper, "squared uppercase"},
	{0x1F170, 0x1F189, kindUpper, "negative squared uppercase"},
}

// Returns the fancy range containing r, or nil.
func lookupRange(r rune) *fancyRange {
	for i := range fancyRanges {
		if r >= fancyRanges[i].lo && r <= fancyRanges[i].hi {
			return &fancyRanges[i]
		}
	}
	return nil
}

// Maps a fancy code point back to its ASCII equivalent by offset within
// its range. Offsets outside the mapped alphabet yield '?'.
func (fr *fancyRange) toASCII(r rune) rune {
	offset := r - fr.lo
	switch fr.kind {
	case kindDigits:
		if offset >= 0 && offset <= 9 {
			return '0' + offset
		}
	case kindUpper:
		if offset >= 0 && offset <= 25 {
			return 'A' + offset
		}
	case kindLower:
		if offset >= 0 && offset <= 25 {
			return 'a' + offset
		}
	case kindLetters:
		if offset >= 0 && offset <= 25 {
			return 'A' + offset
		}
		if offset >= 26 && offset <= 51 {
			return 'a' + (offset - 26)
		}
	}
	return '?'
}
