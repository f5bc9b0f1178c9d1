// Package textutil holds the text cleanup shared by the classifiers and
// the word-frequency extraction backing the word-cloud view.
package textutil

import (
	"regexp"
	"sort"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern        = regexp.MustCompile(`\S+@\S+`)
	nonLetterPattern    = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown and collapses the result to a
// single line of plain text. Model responses are frequently markdown.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// CleanText lowercases the review and strips URLs, email addresses and
// everything that is not a letter, leaving input the keyword classifier
// and word-frequency extraction can work on.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = nonLetterPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// stopwords is a compact English list covering the function words that
// would otherwise dominate any review's frequency counts.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"did", "do", "does", "for", "from", "had", "has", "have", "he",
		"her", "here", "him", "his", "how", "i", "if", "in", "is", "it",
		"its", "just", "me", "my", "no", "not", "of", "on", "or", "our",
		"she", "so", "some", "than", "that", "the", "their", "them",
		"then", "there", "they", "this", "to", "too", "very", "was",
		"we", "were", "what", "when", "which", "who", "will", "with",
		"would", "you", "your",
	} {
		stopwords[w] = struct{}{}
	}
}

// Preprocess drops stopwords and tokens of two characters or fewer
// from cleaned text.
func Preprocess(cleaned string) string {
	var kept []string
	for _, token := range strings.Fields(cleaned) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		if len(token) <= 2 {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// WordFrequencies returns the top `limit` words of preprocessed text by
// occurrence count, ties broken alphabetically so output is stable.
func WordFrequencies(processed string, limit int) []models.WordCount {
	counts := make(map[string]int)
	for _, token := range strings.Fields(processed) {
		counts[token]++
	}

	out := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, models.WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
