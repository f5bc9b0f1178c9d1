// Package sentiment holds the local classifiers and the reconciliation
// logic that turns their outputs plus the external model's signal into a
// single sentiment decision.
package sentiment

import (
	"strings"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "love", "perfect",
		"wonderful", "awesome", "best",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "hate", "worst", "poor",
		"horrible", "disappointed", "failed",
	}
)

// ClassifyKeywords is the deterministic fallback classifier: it counts
// case-insensitive occurrences of two fixed word lists. A strict
// majority wins; any tie, including 0-0, is Neutral. Pure and total.
func ClassifyKeywords(text string) models.SentimentLabel {
	lowered := strings.ToLower(text)

	var posCount, negCount int
	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			posCount++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lowered, word) {
			negCount++
		}
	}

	switch {
	case posCount > negCount:
		return models.SentimentPositive
	case negCount > posCount:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
