package clients

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"google.golang.org/genai"
)

const geminiRequestTimeout = 60 * time.Second // Timeout for individual Gemini API requests

// geminiModelCandidates are tried in order at construction; the first
// model the API recognizes wins. A GEMINI_MODEL override is tried first.
var geminiModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-preview-05-20",
	"gemini-1.5-flash",
	"gemini-pro",
}

// GeminiClient calls the Gemini API, the primary external model.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the client and resolves a usable model name.
// A missing GEMINI_API_KEY or an exhausted candidate list is a
// configuration error: the service must degrade to fallback-only mode.
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, &ConfigurationError{Reason: "missing GEMINI_API_KEY in environment"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, &ConfigurationError{Reason: "failed to create Gemini client", Err: err}
	}

	candidates := geminiModelCandidates
	if override := os.Getenv("GEMINI_MODEL"); override != "" {
		candidates = append([]string{override}, candidates...)
	}

	var lastErr error
	for _, candidate := range candidates {
		probeCtx, cancel := context.WithTimeout(ctx, geminiRequestTimeout)
		_, err := client.Models.Get(probeCtx, candidate, nil)
		cancel()
		if err != nil {
			slog.Warn("[GeminiClient] Model unavailable, trying next candidate",
				slog.String("model", candidate),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}

		slog.Info("[GeminiClient] Gemini client initialized",
			slog.String("model", candidate),
			slog.Duration("timeout", geminiRequestTimeout))
		return &GeminiClient{client: client, model: candidate}, nil
	}

	return nil, &ConfigurationError{Reason: "no usable Gemini model candidate", Err: lastErr}
}

// Generate sends one prompt and returns the model's text payload.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiRequestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.4),
		})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

func (g *GeminiClient) ModelName() string {
	return "gemini/" + g.model
}
