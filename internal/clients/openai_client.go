package clients

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests

var openAIModelCandidates = []string{
	openai.ChatModelGPT4oMini,
	openai.ChatModelGPT3_5Turbo,
}

// OpenAIClient is the alternative external model backend, selected with
// MODEL_PROVIDER=openai.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(ctx context.Context) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, &ConfigurationError{Reason: "missing OPENAI_API_KEY in environment"}
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(openAIRequestTimeout),
	)

	candidates := openAIModelCandidates
	if override := os.Getenv("OPENAI_MODEL"); override != "" {
		candidates = append([]string{override}, candidates...)
	}

	var lastErr error
	for _, candidate := range candidates {
		probeCtx, cancel := context.WithTimeout(ctx, openAIRequestTimeout)
		_, err := client.Models.Get(probeCtx, candidate)
		cancel()
		if err != nil {
			slog.Warn("[OpenAIClient] Model unavailable, trying next candidate",
				slog.String("model", candidate),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}

		slog.Info("[OpenAIClient] OpenAI client initialized",
			slog.String("model", candidate),
			slog.Duration("timeout", openAIRequestTimeout))
		return &OpenAIClient{client: client, model: candidate}, nil
	}

	return nil, &ConfigurationError{Reason: "no usable OpenAI model candidate", Err: lastErr}
}

// Generate sends one prompt as a chat completion and returns the text.
func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, openAIRequestTimeout)
	defer cancel()

	completion, err := o.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
			Model:       openai.F(o.model),
			Temperature: openai.Float(0.4),
		})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai returned an empty response")
	}
	return completion.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) ModelName() string {
	return "openai/" + o.model
}
