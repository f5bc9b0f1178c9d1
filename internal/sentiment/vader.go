package sentiment

import (
	"math"

	"github.com/jonreiter/govader"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/textutil"
)

// VaderClassifier scores reviews with the VADER lexicon. It is the
// default secondary classifier: pure Go, no model files to download.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(text string) models.SecondaryPrediction {
	plainText := textutil.ConvertMarkdownToText(text)

	scores := v.analyzer.PolarityScores(plainText)
	compound := scores.Compound

	var label models.SentimentLabel
	if compound >= 0.20 {
		label = models.SentimentPositive
	} else if compound <= -0.20 {
		label = models.SentimentNegative
	} else {
		label = models.SentimentNeutral
	}

	return models.SecondaryPrediction{
		Label:      label,
		Confidence: math.Min(math.Abs(compound), 1),
		Source:     "vader",
	}
}
