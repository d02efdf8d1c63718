package languagedetector

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"spamwatch/internal/pkg/metrics"
)

// Languages the detector distinguishes. The campaigns this service sees
// come almost exclusively from Indonesian-language channels, with English
// and Malay as the common neighbors.
var languages = []lingua.Language{
	lingua.Indonesian,
	lingua.Malay,
	lingua.English,
}

// Tags the dominant language of a campaign sample text for reports.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithPreloadedLanguageModels().
			Build(),
	}
}

// Returns the ISO 639-1 code of the detected language, or "unknown" for
// texts too short or too ambiguous to classify.
func (d *Detector) Tag(text string) string {
	const minTextLength = 20
	if len(text) < minTextLength {
		return "unknown"
	}

	detected, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		metrics.LanguageDetectionFailures.Inc()
		return "unknown"
	}
	return strings.ToLower(detected.IsoCode639_1().String())
}
