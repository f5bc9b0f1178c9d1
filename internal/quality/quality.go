// Package quality implements the advisory pre-flight check on review
// text. It never blocks submission by itself.
package quality

import (
	"strings"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

// DefaultMinLength is the character minimum applied when the caller has
// no override.
const DefaultMinLength = 20

const minWordCount = 5

// Validate reports quality metrics for a candidate review. Validity
// requires both the character minimum and at least five words; the
// quality score is linear in word count and saturates at 50 words.
func Validate(text string, minLength int) models.QualityReport {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	wordCount := len(strings.Fields(text))
	charCount := len(text)

	score := float64(wordCount) / 50 * 100
	if score > 100 {
		score = 100
	}

	return models.QualityReport{
		IsValid:        charCount >= minLength && wordCount >= minWordCount,
		WordCount:      wordCount,
		CharCount:      charCount,
		HasPunctuation: strings.ContainsAny(text, ".!?"),
		QualityScore:   score,
	}
}
