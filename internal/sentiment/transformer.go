package sentiment

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

const (
	transformerModelDir = "./internal/transformers/models"
	transformerModelID  = "distilbert-base-uncased-finetuned-sst-2-english"
)

// TransformerClassifier runs a local ONNX sentiment model through hugot.
// Opt-in via SECONDARY_CLASSIFIER=transformer; construction downloads
// the model on first use and needs the onnxruntime shared library.
type TransformerClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

type transformerScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewTransformerClassifier() (*TransformerClassifier, error) {
	if err := os.MkdirAll(transformerModelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath, err := hugot.DownloadModel(transformerModelID, transformerModelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to download sentiment model: %w", err)
	}
	slog.Info("[TransformerClassifier] Model ready", slog.String("path", modelPath))

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "reviewSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &TransformerClassifier{session: session, pipeline: pipeline}, nil
}

func (t *TransformerClassifier) Classify(text string) models.SecondaryPrediction {
	neutral := models.SecondaryPrediction{
		Label:  models.SentimentNeutral,
		Source: "transformer",
	}

	output, err := t.pipeline.RunPipeline([]string{text})
	if err != nil {
		slog.Warn("[TransformerClassifier] Inference failed",
			slog.String("error", err.Error()))
		return neutral
	}

	raw := output.GetOutput()
	if len(raw) == 0 {
		return neutral
	}
	first, ok := raw[0].(string)
	if !ok {
		slog.Warn("[TransformerClassifier] Unexpected output format from hugot")
		return neutral
	}

	var score transformerScore
	if err := json.Unmarshal([]byte(first), &score); err != nil {
		slog.Warn("[TransformerClassifier] Failed to decode pipeline output",
			slog.String("error", err.Error()))
		return neutral
	}

	label := models.SentimentNeutral
	switch strings.ToUpper(score.Label) {
	case "POSITIVE":
		label = models.SentimentPositive
	case "NEGATIVE":
		label = models.SentimentNegative
	}

	return models.SecondaryPrediction{
		Label:      label,
		Confidence: score.Score,
		Source:     "transformer",
	}
}

func (t *TransformerClassifier) Close() {
	if t.session != nil {
		t.session.Destroy()
	}
}

// NewSecondaryClassifier picks the classifier implementation from the
// environment, falling back to VADER when the transformer cannot start.
func NewSecondaryClassifier() SecondaryClassifier {
	if os.Getenv("SECONDARY_CLASSIFIER") == "transformer" {
		classifier, err := NewTransformerClassifier()
		if err == nil {
			return classifier
		}
		slog.Warn("[Sentiment] Transformer classifier unavailable, using VADER",
			slog.String("error", err.Error()))
	}
	return NewVaderClassifier()
}
