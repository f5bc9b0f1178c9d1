// Package dataset loads the reference review CSV and computes the
// descriptive statistics used for dataset comparison.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

var ratedPattern = regexp.MustCompile(`Rated (\d+)`)

// LoadStats reads the review dataset and aggregates sentiment
// distribution by star rating: 1-2 stars Negative, 3 Neutral, 4-5
// Positive. Rows without review text or a parseable rating are skipped.
func LoadStats(path string) (*models.DatasetStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	textCol, ratingCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Review Text":
			textCol = i
		case "Rating":
			ratingCol = i
		}
	}
	if textCol < 0 || ratingCol < 0 {
		return nil, fmt.Errorf("dataset is missing Review Text or Rating column")
	}

	stats := &models.DatasetStats{
		SentimentDist: make(map[string]int),
	}
	var ratingSum int

	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		if textCol >= len(record) || ratingCol >= len(record) {
			continue
		}
		if strings.TrimSpace(record[textCol]) == "" {
			continue
		}

		rating, ok := extractRating(record[ratingCol])
		if !ok {
			continue
		}

		stats.TotalReviews++
		ratingSum += rating
		stats.SentimentDist[string(labelForRating(rating))]++
	}

	if stats.TotalReviews == 0 {
		return nil, fmt.Errorf("dataset contains no usable rows")
	}
	stats.AvgRating = float64(ratingSum) / float64(stats.TotalReviews)

	slog.Info("[Dataset] Reference dataset loaded",
		slog.String("path", path),
		slog.Int("total_reviews", stats.TotalReviews))

	return stats, nil
}

// extractRating pulls the numeric star rating out of "Rated N" strings.
func extractRating(raw string) (int, bool) {
	match := ratedPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, false
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return rating, true
}

func labelForRating(rating int) models.SentimentLabel {
	switch {
	case rating <= 2:
		return models.SentimentNegative
	case rating == 3:
		return models.SentimentNeutral
	default:
		return models.SentimentPositive
	}
}
