package models

// QualityReport is the advisory pre-flight check on a candidate review.
// Callers decide whether to act on IsValid.
type QualityReport struct {
	IsValid        bool    `json:"is_valid"`
	WordCount      int     `json:"word_count"`
	CharCount      int     `json:"char_count"`
	HasPunctuation bool    `json:"has_punctuation"`
	QualityScore   float64 `json:"quality_score"`
}
