package models

// AnalysisRequest is the single free-text review submitted for analysis.
type AnalysisRequest struct {
	ReviewText string `json:"review_text" binding:"required"`
}

// WordCount is one entry of the word-frequency data the rendering layer
// uses to draw a word cloud.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisResult is everything surfaced to the rendering layer for one
// review. Fields tied to a remote call are zero-valued when that call
// failed; ErrorNotes carries the per-field diagnostics.
type AnalysisResult struct {
	RequestID  string                   `json:"request_id"`
	ReviewText string                   `json:"review_text"`
	Sentiment  SentimentLabel           `json:"sentiment"`
	Quality    QualityReport            `json:"quality"`
	Combined   *CombinedSentimentResult `json:"combined,omitempty"`
	Aspects    string                   `json:"aspects,omitempty"`
	Summary    string                   `json:"summary,omitempty"`
	Insights   []string                 `json:"insights,omitempty"`
	Sarcasm    string                   `json:"sarcasm,omitempty"`
	Categories string                   `json:"categories,omitempty"`
	WordCloud  []WordCount              `json:"word_cloud,omitempty"`
	Dataset    *DatasetStats            `json:"dataset_comparison,omitempty"`
	ErrorNotes []string                 `json:"error_notes,omitempty"`
	Degraded   bool                     `json:"degraded"`
	FromCache  bool                     `json:"from_cache,omitempty"`
}
