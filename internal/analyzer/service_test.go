package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

// fakeModel answers each pipeline prompt with a canned payload keyed on
// a distinctive substring of the prompt template.
type fakeModel struct {
	calls     int
	failAll   bool
	sentiment string
	insights  string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	if f.failAll {
		return "", errors.New("model unreachable")
	}

	switch {
	case strings.Contains(prompt, "Analyze the sentiment"):
		return f.sentiment, nil
	case strings.Contains(prompt, "identify specific aspects"):
		return `[{"aspect": "Delivery", "sentiment": "Positive", "quote": "quick"}]`, nil
	case strings.Contains(prompt, "Summarize the following"):
		return "Customer praises delivery speed and product quality.", nil
	case strings.Contains(prompt, "contains sarcasm"):
		return `{"has_sarcasm": "No", "confidence": 0.9}`, nil
	case strings.Contains(prompt, "Categorize this customer review"):
		return `{"primary_category": "Positive Experience", "confidence": 0.85}`, nil
	case strings.Contains(prompt, "key insights"):
		return f.insights, nil
	}
	return "", errors.New("unexpected prompt")
}

func (f *fakeModel) ModelName() string { return "fake/test-model" }

type fakeSecondary struct {
	prediction models.SecondaryPrediction
}

func (f *fakeSecondary) Classify(_ string) models.SecondaryPrediction {
	return f.prediction
}

type fakeCache struct {
	stored  map[string]models.AnalysisResult
	fetches int
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string]models.AnalysisResult)}
}

func (f *fakeCache) FetchAnalysis(_ context.Context, reviewText string) (*models.AnalysisResult, bool) {
	f.fetches++
	result, ok := f.stored[reviewText]
	if !ok {
		return nil, false
	}
	return &result, true
}

func (f *fakeCache) StoreAnalysis(_ context.Context, reviewText string, result models.AnalysisResult) error {
	f.stored[reviewText] = result
	return nil
}

func positiveSecondary() *fakeSecondary {
	return &fakeSecondary{prediction: models.SecondaryPrediction{
		Label:      models.SentimentPositive,
		Confidence: 0.9,
		Source:     "vader",
	}}
}

func TestAnalyze_RejectsShortReviews(t *testing.T) {
	svc := NewService(nil, positiveSecondary())

	for _, input := range []string{"", "too short", "         x        "} {
		_, err := svc.Analyze(context.Background(), input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "input %q", input)
	}
}

func TestAnalyze_DegradedModeUsesKeywordFallback(t *testing.T) {
	svc := NewService(nil, positiveSecondary())

	result, err := svc.Analyze(context.Background(), "The delivery was great and the experience amazing overall")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.Empty(t, result.Aspects)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.Insights)
	assert.Empty(t, result.ErrorNotes)
	require.NotNil(t, result.Combined)
	assert.InDelta(t, 0.8, result.Combined.CombinedConfidence, 1e-9)
	assert.False(t, result.Combined.ModelAnalysis.ParsingError)
	assert.NotEmpty(t, result.RequestID)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	model := &fakeModel{
		sentiment: `{"sentiment": "Positive", "intensity": 0.9, "confidence": 0.95, "emotions": ["Joy"], "key_phrases": ["quick delivery"]}`,
		insights:  "- Customers value the quick delivery turnaround\n- Product quality exceeds price expectations\nok",
	}
	svc := NewService(model, positiveSecondary())

	result, err := svc.Analyze(context.Background(), "The delivery was quick and the product is excellent quality")
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.Empty(t, result.ErrorNotes)
	assert.Contains(t, result.Aspects, "Delivery")
	assert.Contains(t, result.Summary, "delivery speed")
	assert.Contains(t, result.Sarcasm, "has_sarcasm")
	assert.Contains(t, result.Categories, "Positive Experience")
	assert.Equal(t, []string{
		"Customers value the quick delivery turnaround",
		"Product quality exceeds price expectations",
	}, result.Insights)

	require.NotNil(t, result.Combined)
	assert.Equal(t, "Positive", result.Combined.ModelAnalysis.Sentiment)
	assert.Equal(t, 0.9, result.Combined.ModelAnalysis.Intensity)
	assert.Equal(t, []string{"Joy"}, result.Combined.ModelAnalysis.Emotions)
	assert.InDelta(t, 0.8, result.Combined.CombinedConfidence, 1e-9)

	assert.NotEmpty(t, result.WordCloud)
	assert.Equal(t, 6, model.calls)
}

func TestAnalyze_RemoteFailuresNeverAbort(t *testing.T) {
	model := &fakeModel{failAll: true}
	svc := NewService(model, &fakeSecondary{prediction: models.SecondaryPrediction{
		Label:      models.SentimentNegative,
		Confidence: 0.8,
		Source:     "vader",
	}})

	result, err := svc.Analyze(context.Background(), "The product was terrible and the packaging awful overall")
	require.NoError(t, err)

	assert.Len(t, result.ErrorNotes, 6)
	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.Empty(t, result.Aspects)
	assert.Empty(t, result.Insights)
	require.NotNil(t, result.Combined)
	assert.False(t, result.Combined.ModelAnalysis.ParsingError)
}

func TestAnalyze_CacheRoundTrip(t *testing.T) {
	model := &fakeModel{
		sentiment: `{"sentiment": "Positive"}`,
		insights:  "- Customers value the quick delivery turnaround",
	}
	cache := newFakeCache()
	svc := NewService(model, positiveSecondary(), WithCache(cache))

	review := "The delivery was quick and the product is excellent quality"

	first, err := svc.Analyze(context.Background(), review)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	require.Contains(t, cache.stored, review)

	callsAfterFirst := model.calls

	second, err := svc.Analyze(context.Background(), review)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.RequestID, second.RequestID)
	assert.Equal(t, callsAfterFirst, model.calls)
}

func TestAnalyze_DoesNotCacheIncompleteResults(t *testing.T) {
	cache := newFakeCache()

	degraded := NewService(nil, positiveSecondary(), WithCache(cache))
	_, err := degraded.Analyze(context.Background(), "The delivery was great and the experience amazing overall")
	require.NoError(t, err)
	assert.Empty(t, cache.stored)

	failing := NewService(&fakeModel{failAll: true}, positiveSecondary(), WithCache(cache))
	_, err = failing.Analyze(context.Background(), "The delivery was great and the experience amazing overall")
	require.NoError(t, err)
	assert.Empty(t, cache.stored)
}

func TestAnalyze_DatasetAttached(t *testing.T) {
	stats := &models.DatasetStats{TotalReviews: 100, AvgRating: 4.1}
	svc := NewService(nil, positiveSecondary(), WithDataset(stats))

	result, err := svc.Analyze(context.Background(), "The delivery was great and the experience amazing overall")
	require.NoError(t, err)

	assert.Equal(t, stats, result.Dataset)
}
