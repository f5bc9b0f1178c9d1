// Package analyzer sequences one review analysis: validation, text
// preprocessing, remote model calls, response parsing and sentiment
// reconciliation. Failures in optional enrichment steps never abort the
// overall analysis; only a validation failure halts the pipeline.
package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/insights"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/parser"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/quality"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/sentiment"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/textutil"
)

const (
	// MinSubmissionLength is the hard minimum for analysis to proceed.
	MinSubmissionLength = 10

	summaryMaxWords  = 100
	insightsTopN     = 5
	wordCloudLimit   = 100
	minWordCloudText = 10
)

// ModelClient is the external model call interface. The model is an
// opaque collaborator: it takes a prompt and returns a text payload.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// AnalysisCache is the optional per-review result cache.
type AnalysisCache interface {
	FetchAnalysis(ctx context.Context, reviewText string) (*models.AnalysisResult, bool)
	StoreAnalysis(ctx context.Context, reviewText string, result models.AnalysisResult) error
}

// Service runs the analysis pipeline. A nil model client puts the
// service in degraded mode: keyword and secondary classification only,
// no model-derived fields.
type Service struct {
	model     ModelClient
	secondary sentiment.SecondaryClassifier
	cache     AnalysisCache
	dataset   *models.DatasetStats
	minLength int
}

type Option func(*Service)

func WithCache(cache AnalysisCache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithDataset(stats *models.DatasetStats) Option {
	return func(s *Service) { s.dataset = stats }
}

func WithMinLength(minLength int) Option {
	return func(s *Service) { s.minLength = minLength }
}

func NewService(model ModelClient, secondary sentiment.SecondaryClassifier, opts ...Option) *Service {
	s := &Service{
		model:     model,
		secondary: secondary,
		minLength: quality.DefaultMinLength,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.model == nil {
		slog.Warn("[Analyzer] No model client configured, running in degraded mode")
	}
	return s
}

// Degraded reports whether the service runs without an external model.
func (s *Service) Degraded() bool {
	return s.model == nil
}

// Analyze runs the full pipeline for one review. The only error it
// returns is a ValidationError; every remote or parsing failure is
// converted into an error note on the result instead.
func (s *Service) Analyze(ctx context.Context, reviewText string) (*models.AnalysisResult, error) {
	trimmed := strings.TrimSpace(reviewText)
	if len(trimmed) < MinSubmissionLength {
		return nil, &ValidationError{Reason: "please enter a review with at least 10 characters"}
	}

	if s.cache != nil {
		if cached, ok := s.cache.FetchAnalysis(ctx, reviewText); ok {
			cached.FromCache = true
			slog.Info("[Analyzer] Served analysis from cache",
				slog.String("request_id", cached.RequestID))
			return cached, nil
		}
	}

	result := &models.AnalysisResult{
		RequestID:  uuid.NewString(),
		ReviewText: reviewText,
		Quality:    quality.Validate(reviewText, s.minLength),
		Degraded:   s.Degraded(),
		Dataset:    s.dataset,
	}

	cleaned := textutil.CleanText(reviewText)
	processed := textutil.Preprocess(cleaned)

	keywordLabel := sentiment.ClassifyKeywords(cleaned)
	secondaryPred := s.secondary.Classify(reviewText)

	var sentimentRaw string
	if s.model != nil {
		sentimentRaw = s.remoteCall(ctx, result, "sentiment", sentimentPrompt(reviewText))
		result.Aspects = s.remoteCall(ctx, result, "aspects", aspectsPrompt(reviewText))
		result.Summary = s.remoteCall(ctx, result, "summary", summaryPrompt(reviewText, summaryMaxWords))
		result.Sarcasm = s.remoteCall(ctx, result, "sarcasm", sarcasmPrompt(reviewText))
		result.Categories = s.remoteCall(ctx, result, "categories", categorizePrompt(reviewText))

		if insightsRaw := s.remoteCall(ctx, result, "insights", insightsPrompt(reviewText, insightsTopN)); insightsRaw != "" {
			result.Insights = insights.Extract(insightsRaw)
		}
	}

	parsed := parser.ParseModelResponse(sentimentRaw)
	if sentimentRaw == "" {
		// No model signal at all; keep the fallback variant empty
		// rather than flagging a parse failure.
		parsed = models.ParsedModelResult{}
	}

	result.Sentiment = sentiment.Reconcile(sentimentRaw, keywordLabel)
	combined := sentiment.Combine(secondaryPred, parsed)
	result.Combined = &combined

	if len(processed) > minWordCloudText {
		result.WordCloud = textutil.WordFrequencies(processed, wordCloudLimit)
	}

	if s.cache != nil && !result.Degraded && len(result.ErrorNotes) == 0 {
		if err := s.cache.StoreAnalysis(ctx, reviewText, *result); err != nil {
			slog.Warn("[Analyzer] Failed to cache analysis",
				slog.String("request_id", result.RequestID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.String("request_id", result.RequestID),
		slog.String("sentiment", string(result.Sentiment)),
		slog.Int("error_notes", len(result.ErrorNotes)))

	return result, nil
}

// remoteCall performs one optional enrichment call. On failure it logs,
// attaches an error note and returns an empty payload so the pipeline
// proceeds with whatever succeeded.
func (s *Service) remoteCall(ctx context.Context, result *models.AnalysisResult, op, prompt string) string {
	payload, err := s.model.Generate(ctx, prompt)
	if err != nil {
		remoteErr := &RemoteCallError{Op: op, Err: err}
		slog.Error("[Analyzer] Remote call failed",
			slog.String("request_id", result.RequestID),
			slog.String("op", op),
			slog.String("error", err.Error()))
		result.ErrorNotes = append(result.ErrorNotes, remoteErr.Error())
		return ""
	}
	return payload
}
