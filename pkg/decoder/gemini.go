package decoder

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ohmscope/ohmscope/internal/httpc"
)

const transportSDK = "sdk"

// bandPrompt instructs the model how to report bands.
const bandPrompt = "You read resistor color bands from images. " +
	"Return strict JSON matching the schema. " +
	"Use standard color names: black, brown, red, orange, yellow, green, blue, violet, grey, white, gold, silver. " +
	"Read bands left-to-right; if a tolerance band exists, it is typically on the right. " +
	"Identify bands, roles, and confidence. JSON only."

// bandSchema constrains the structured-output transport to the band payload.
var bandSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"bands": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"index":      map[string]interface{}{"type": "INTEGER"},
					"color_name": map[string]interface{}{"type": "STRING"},
					"role": map[string]interface{}{
						"type": "STRING",
						"enum": []string{RoleDigit, RoleMultiplier, RoleTolerance, RoleTempco},
					},
					"confidence": map[string]interface{}{"type": "NUMBER"},
				},
				"required": []string{"index", "color_name", "role", "confidence"},
			},
		},
		"band_scheme": map[string]interface{}{
			"type": "STRING",
			"enum": []string{"3-band", "4-band", "5-band", "6-band"},
		},
	},
	"required": []string{"bands"},
}

// Gemini is the structured-output band decoder. It asks the v1beta API for
// JSON constrained by bandSchema and iterates the candidate model list
// until one answers.
type Gemini struct {
	apiKey string
	config *Config
	http   *http.Client
	logger *slog.Logger
}

// NewGemini creates the structured-output provider.
func NewGemini(opts ...Option) (*Gemini, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	if cfg.APIKey == "" {
		return nil, WrapError(transportSDK, ErrNoAPIKey)
	}

	return &Gemini{
		apiKey: cfg.APIKey,
		config: cfg,
		http:   httpc.NewClient(cfg.Timeout),
		logger: cfg.Logger.With("component", "decoder.gemini"),
	}, nil
}

// ReadBands submits the image and returns the detected bands.
func (g *Gemini) ReadBands(ctx context.Context, jpegData []byte) (*Detection, error) {
	start := time.Now()

	payload := visionPayload(jpegData, map[string]interface{}{
		"temperature":      g.config.Temperature,
		"maxOutputTokens":  g.config.MaxTokens,
		"responseMimeType": "application/json",
		"responseSchema":   bandSchema,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, WrapError(transportSDK, err)
	}

	var lastErr error
	for _, model := range g.config.Models {
		url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.config.BaseURL, model, g.apiKey)
		text, err := postGenerate(ctx, g.http, transportSDK, url, body)
		if err != nil {
			lastErr = err
			g.logger.Debug("model failed, trying next", "model", model, "error", err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		det, err := parseDetection(text)
		if err != nil {
			return nil, WrapError(transportSDK, err)
		}
		det.Transport = transportSDK
		det.Model = model
		det.LatencyMs = time.Since(start).Milliseconds()
		return det, nil
	}

	if lastErr == nil {
		lastErr = WrapError(transportSDK, fmt.Errorf("no models configured"))
	}
	return nil, lastErr
}

// Transport identifies the decoding path.
func (g *Gemini) Transport() string { return transportSDK }

// Health checks API connectivity with a minimal text-only call.
func (g *Gemini) Health(ctx context.Context) error {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": "ping"}}},
		},
		"generationConfig": map[string]interface{}{"maxOutputTokens": 1},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return WrapError(transportSDK, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.config.BaseURL, g.config.Models[0], g.apiKey)
	_, err = postGenerate(ctx, g.http, transportSDK, url, body)
	return err
}

// Close releases resources.
func (g *Gemini) Close() error {
	g.http.CloseIdleConnections()
	return nil
}

// visionPayload builds a generateContent body with the band prompt and one
// inline JPEG.
func visionPayload(jpegData []byte, generationConfig map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": bandPrompt},
					{
						"inline_data": map[string]string{
							"mime_type": "image/jpeg",
							"data":      base64.StdEncoding.EncodeToString(jpegData),
						},
					},
				},
			},
		},
		"generationConfig": generationConfig,
	}
}

// postGenerate performs one generateContent call and returns the text of
// the first candidate.
func postGenerate(ctx context.Context, client *http.Client, transport, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", WrapError(transport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", WrapError(transport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parseAPIError(transport, resp)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", WrapError(transport, fmt.Errorf("decode response: %w", err))
	}

	if result.Error.Message != "" {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    result.Error.Message,
			Transport:  transport,
		}
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", WrapError(transport, fmt.Errorf("no response content"))
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

// parseAPIError reads and parses an error response.
func parseAPIError(transport string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error"`
	}

	message := string(body)
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Transport:  transport,
	}
}

// geminiResponse is the generateContent response format.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Verify Gemini implements Provider at compile time.
var _ Provider = (*Gemini)(nil)
