package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

func TestVaderClassifier(t *testing.T) {
	classifier := NewVaderClassifier()

	positive := classifier.Classify("I love this product, it is great and works perfectly!")
	assert.Equal(t, models.SentimentPositive, positive.Label)
	assert.Equal(t, "vader", positive.Source)
	assert.GreaterOrEqual(t, positive.Confidence, 0.0)
	assert.LessOrEqual(t, positive.Confidence, 1.0)

	negative := classifier.Classify("This is terrible, awful quality and I hate it.")
	assert.Equal(t, models.SentimentNegative, negative.Label)

	neutral := classifier.Classify("The package arrived on a tuesday.")
	assert.Equal(t, models.SentimentNeutral, neutral.Label)
}

func TestVaderClassifier_StripsMarkdown(t *testing.T) {
	classifier := NewVaderClassifier()

	plain := classifier.Classify("I love this product")
	markdown := classifier.Classify("**I love** [this product](https://example.com)")

	assert.Equal(t, plain.Label, markdown.Label)
}
