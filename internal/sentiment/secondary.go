package sentiment

import "github.com/sairam-sr8/Product-Review-Analyzer/internal/models"

// SecondaryClassifier is the optional local classifier whose prediction
// is blended with the external model's analysis.
type SecondaryClassifier interface {
	Classify(text string) models.SecondaryPrediction
}
