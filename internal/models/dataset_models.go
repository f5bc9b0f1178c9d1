package models

// DatasetStats are descriptive statistics over the reference review
// dataset, used to put a single analyzed review in context.
type DatasetStats struct {
	TotalReviews  int            `json:"total_reviews"`
	AvgRating     float64        `json:"avg_rating"`
	SentimentDist map[string]int `json:"sentiment_dist"`
}
