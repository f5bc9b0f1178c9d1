package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "GREAT Product", "great product"},
		{"strips urls", "see https://example.com/review for details", "see for details"},
		{"strips emails", "contact support@example.com about it", "contact about it"},
		{"strips non letters", "5 stars!!! worth $20", "stars worth"},
		{"collapses whitespace", "too   many\t spaces\n here", "too many spaces here"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestPreprocess(t *testing.T) {
	t.Run("drops stopwords", func(t *testing.T) {
		assert.Equal(t, "product arrived broken", Preprocess("the product arrived broken"))
	})

	t.Run("drops short tokens", func(t *testing.T) {
		assert.Equal(t, "arrived box", Preprocess("it arrived in a box"))
	})

	t.Run("empty after filtering", func(t *testing.T) {
		assert.Equal(t, "", Preprocess("it is so"))
	})
}

func TestWordFrequencies(t *testing.T) {
	got := WordFrequencies("quality quality delivery quality delivery price", 0)

	assert.Equal(t, []models.WordCount{
		{Word: "quality", Count: 3},
		{Word: "delivery", Count: 2},
		{Word: "price", Count: 1},
	}, got)
}

func TestWordFrequencies_TiesBreakAlphabetically(t *testing.T) {
	got := WordFrequencies("zebra apple zebra apple", 0)

	assert.Equal(t, []models.WordCount{
		{Word: "apple", Count: 2},
		{Word: "zebra", Count: 2},
	}, got)
}

func TestWordFrequencies_Limit(t *testing.T) {
	got := WordFrequencies("one two three four", 2)

	assert.Len(t, got, 2)
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "see the docs", RemoveLinks("see [the docs](https://example.com/docs)"))
	assert.Equal(t, "visit ", RemoveLinks("visit https://example.com"))
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("**bold claim** spread\nacross lines")

	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "\n")
	assert.Contains(t, got, "bold claim")
}
