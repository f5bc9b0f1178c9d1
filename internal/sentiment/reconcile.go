package sentiment

import (
	"strings"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

// Reconcile produces the final sentiment label. The external model's
// textual signal is authoritative: "positive" without "negative" wins,
// any "negative" wins next, anything else is Neutral. Negative takes
// precedence whenever both words appear. With no model text at all the
// fallback label (keyword classifier) is used.
func Reconcile(modelText string, fallback models.SentimentLabel) models.SentimentLabel {
	if strings.TrimSpace(modelText) == "" {
		return fallback
	}

	lowered := strings.ToLower(modelText)
	switch {
	case strings.Contains(lowered, "positive") && !strings.Contains(lowered, "negative"):
		return models.SentimentPositive
	case strings.Contains(lowered, "negative"):
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// externalModelBaseline is the assumed confidence of the external model,
// blended 50/50 with the secondary classifier's score.
const externalModelBaseline = 0.7

// Combine merges the secondary classifier's prediction with the parsed
// model record into one CombinedSentimentResult.
func Combine(secondary models.SecondaryPrediction, parsed models.ParsedModelResult) models.CombinedSentimentResult {
	return models.CombinedSentimentResult{
		Secondary:          secondary,
		ModelAnalysis:      parsed,
		CombinedConfidence: (secondary.Confidence + externalModelBaseline) / 2,
	}
}
