package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

const (
	analysisKeyPrefix = "review:analysis:"
	analysisTTL       = 86400 // seconds
)

// ValkeyClient caches finished analyses so repeated demo inputs do not
// burn remote model calls. Entirely optional: the service runs without
// it when VALKEY_INIT_ADDRESS is unset.
type ValkeyClient struct {
	Client valkey.Client
}

// InitValkey connects to Valkey, or returns nil when no address is
// configured.
func InitValkey() (*ValkeyClient, error) {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	if valkeyAddr == "" {
		return nil, nil
	}

	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

// AnalysisKey derives the cache key for a review text.
func AnalysisKey(reviewText string) string {
	sum := sha256.Sum256([]byte(reviewText))
	return analysisKeyPrefix + hex.EncodeToString(sum[:])
}

// StoreAnalysis caches one finished analysis for a day, keyed by the
// hash of the review text.
func (vc *ValkeyClient) StoreAnalysis(ctx context.Context, reviewText string, result models.AnalysisResult) error {
	key := AnalysisKey(reviewText)

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	completed := []valkey.Completed{
		vc.Client.B().Set().Key(key).Value(string(payload)).Build(),
		vc.Client.B().Expire().Key(key).Seconds(analysisTTL).Build(),
	}

	for _, res := range vc.doMultiWithRetry(ctx, completed, 3) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Analysis cached",
		slog.String("key", key))
	return nil
}

// FetchAnalysis returns the cached analysis for a review, if any.
func (vc *ValkeyClient) FetchAnalysis(ctx context.Context, reviewText string) (*models.AnalysisResult, bool) {
	key := AnalysisKey(reviewText)

	res := vc.doWithRetry(ctx, vc.Client.B().Get().Key(key).Build(), 3)
	if res.Error() != nil {
		return nil, false
	}

	payload, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		slog.Warn("[ValkeyClient] Failed to decode cached analysis",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}

	return &result, true
}

func (vc *ValkeyClient) doMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) doWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}
