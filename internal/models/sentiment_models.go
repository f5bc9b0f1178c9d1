package models

// SentimentLabel is the reconciled sentiment decision. The three values
// are mutually exclusive and carry no ordering.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// ParsedModelResult is the structured record recovered from raw model
// output. When structured parsing fails the record degenerates to the
// fallback variant: only Text and ParsingError are populated.
type ParsedModelResult struct {
	Sentiment    string   `json:"sentiment"`
	Intensity    float64  `json:"intensity"`
	Confidence   float64  `json:"confidence"`
	Emotions     []string `json:"emotions"`
	KeyPhrases   []string `json:"key_phrases"`
	Text         string   `json:"text,omitempty"`
	ParsingError bool     `json:"parsing_error,omitempty"`
}

// SecondaryPrediction is the contribution of the local secondary
// classifier (lexicon or transformer) to the combined result.
type SecondaryPrediction struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
	Source     string         `json:"source"`
}

// CombinedSentimentResult merges the secondary classifier output with
// the parsed model record. CombinedConfidence is a fixed linear blend
// against the external model's assumed 0.7 baseline, not a calibrated
// estimator.
type CombinedSentimentResult struct {
	Secondary          SecondaryPrediction `json:"secondary"`
	ModelAnalysis      ParsedModelResult   `json:"model_analysis"`
	CombinedConfidence float64             `json:"combined_confidence"`
}
