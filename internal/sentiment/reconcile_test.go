package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		modelText string
		fallback  models.SentimentLabel
		want      models.SentimentLabel
	}{
		{
			name:      "positive without negative",
			modelText: `{"sentiment": "Positive", "intensity": 0.9}`,
			fallback:  models.SentimentNeutral,
			want:      models.SentimentPositive,
		},
		{
			name:      "negative wins when both appear",
			modelText: "It was positive overall but one negative remark",
			fallback:  models.SentimentNeutral,
			want:      models.SentimentNegative,
		},
		{
			name:      "neither word is neutral",
			modelText: "the review mostly discusses delivery logistics",
			fallback:  models.SentimentPositive,
			want:      models.SentimentNeutral,
		},
		{
			name:      "no model response falls back to keyword label",
			modelText: "",
			fallback:  models.SentimentNegative,
			want:      models.SentimentNegative,
		},
		{
			name:      "case insensitive match",
			modelText: "Overall assessment: NEGATIVE",
			fallback:  models.SentimentNeutral,
			want:      models.SentimentNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(tt.modelText, tt.fallback))
		})
	}
}

func TestCombine_ConfidenceBlend(t *testing.T) {
	secondary := models.SecondaryPrediction{
		Label:      models.SentimentPositive,
		Confidence: 0.9,
		Source:     "vader",
	}
	parsed := models.ParsedModelResult{Sentiment: "Positive"}

	got := Combine(secondary, parsed)

	assert.InDelta(t, 0.8, got.CombinedConfidence, 1e-9)
	assert.Equal(t, secondary, got.Secondary)
	assert.Equal(t, parsed, got.ModelAnalysis)
}

func TestCombine_ZeroConfidence(t *testing.T) {
	got := Combine(models.SecondaryPrediction{}, models.ParsedModelResult{})
	assert.InDelta(t, 0.35, got.CombinedConfidence, 1e-9)
}
