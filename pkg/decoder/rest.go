package decoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ohmscope/ohmscope/internal/httpc"
)

const transportREST = "rest"

// restBaseURL is the plain v1 endpoint, which does not support response
// schemas but is accepted by a wider set of deployments.
const restBaseURL = "https://generativelanguage.googleapis.com/v1"

// REST is the fallback band decoder. It calls plain generateContent with
// no response schema and relies on the prompt plus brace-window extraction
// to recover the band payload.
type REST struct {
	apiKey string
	config *Config
	http   *http.Client
	logger *slog.Logger
}

// NewREST creates the fallback provider.
func NewREST(opts ...Option) (*REST, error) {
	cfg := DefaultConfig()
	cfg.BaseURL = restBaseURL
	cfg.Apply(opts...)

	if cfg.APIKey == "" {
		return nil, WrapError(transportREST, ErrNoAPIKey)
	}

	return &REST{
		apiKey: cfg.APIKey,
		config: cfg,
		http:   httpc.NewClient(cfg.Timeout),
		logger: cfg.Logger.With("component", "decoder.rest"),
	}, nil
}

// ReadBands submits the image and returns the detected bands.
func (r *REST) ReadBands(ctx context.Context, jpegData []byte) (*Detection, error) {
	start := time.Now()

	payload := visionPayload(jpegData, map[string]interface{}{
		"temperature":     r.config.Temperature,
		"maxOutputTokens": r.config.MaxTokens,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, WrapError(transportREST, err)
	}

	var lastErr error
	for _, model := range r.config.Models {
		url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.config.BaseURL, model, r.apiKey)
		text, err := postGenerate(ctx, r.http, transportREST, url, body)
		if err != nil {
			lastErr = err
			r.logger.Debug("model failed, trying next", "model", model, "error", err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		det, err := parseDetection(text)
		if err != nil {
			return nil, WrapError(transportREST, err)
		}
		det.Transport = transportREST
		det.Model = model
		det.LatencyMs = time.Since(start).Milliseconds()
		return det, nil
	}

	if lastErr == nil {
		lastErr = WrapError(transportREST, fmt.Errorf("no models configured"))
	}
	return nil, lastErr
}

// Transport identifies the decoding path.
func (r *REST) Transport() string { return transportREST }

// Health checks API connectivity with a minimal text-only call.
func (r *REST) Health(ctx context.Context) error {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": "ping"}}},
		},
		"generationConfig": map[string]interface{}{"maxOutputTokens": 1},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return WrapError(transportREST, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.config.BaseURL, r.config.Models[0], r.apiKey)
	_, err = postGenerate(ctx, r.http, transportREST, url, body)
	return err
}

// Close releases resources.
func (r *REST) Close() error {
	r.http.CloseIdleConnections()
	return nil
}

// Verify REST implements Provider at compile time.
var _ Provider = (*REST)(nil)
