package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/sairam-sr8/Product-Review-Analyzer/config"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/analyzer"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/clients"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/dataset"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/logging"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/sentiment"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()

	model := initModelClient(ctx)

	secondary := sentiment.NewSecondaryClassifier()

	opts := []analyzer.Option{}

	stats := loadDatasetStats()
	if stats != nil {
		opts = append(opts, analyzer.WithDataset(stats))
	}

	cache, err := clients.InitValkey()
	if err != nil {
		slog.Warn("[Main] Valkey unavailable, running without cache",
			slog.String("error", err.Error()))
	} else if cache != nil {
		defer cache.Close()
		opts = append(opts, analyzer.WithCache(cache))
	}

	service := analyzer.NewService(model, secondary, opts...)
	handler := server.NewHandler(service, stats)
	r := server.SetupRouter(handler)

	addr := ":" + port()
	slog.Info("[Main] Starting review analyzer", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		slog.Error("[Main] Server exited",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initModelClient builds the configured external model client. A
// configuration error is not fatal: the service starts in degraded,
// fallback-only mode with a clear diagnostic.
func initModelClient(ctx context.Context) analyzer.ModelClient {
	var (
		model analyzer.ModelClient
		err   error
	)

	switch os.Getenv("MODEL_PROVIDER") {
	case "openai":
		model, err = clients.NewOpenAIClient(ctx)
	default:
		model, err = clients.NewGeminiClient(ctx)
	}

	if err != nil {
		var configErr *clients.ConfigurationError
		if errors.As(err, &configErr) {
			slog.Error("[Main] Model client not configured, degrading to fallback-only analysis",
				slog.String("error", configErr.Error()))
			return nil
		}
		slog.Error("[Main] Failed to initialize model client, degrading to fallback-only analysis",
			slog.String("error", err.Error()))
		return nil
	}

	slog.Info("[Main] Model client ready", slog.String("model", model.ModelName()))
	return model
}

func loadDatasetStats() *models.DatasetStats {
	path := os.Getenv("REVIEWS_DATASET_PATH")
	if path == "" {
		return nil
	}

	stats, err := dataset.LoadStats(path)
	if err != nil {
		slog.Warn("[Main] Reference dataset not loaded, dataset comparison disabled",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	return stats
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
