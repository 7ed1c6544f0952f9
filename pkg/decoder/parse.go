package decoder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// detectionPayload mirrors the JSON the model is asked to return.
type detectionPayload struct {
	Bands      []DetectedBand `json:"bands"`
	BandScheme string         `json:"band_scheme"`
}

// parseDetection extracts and decodes the band payload from model output.
func parseDetection(text string) (*Detection, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload detectionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableResponse, err)
	}

	if len(payload.Bands) == 0 {
		return nil, fmt.Errorf("%w: no bands in payload", ErrUnparseableResponse)
	}

	return &Detection{
		Bands:  payload.Bands,
		Scheme: payload.BandScheme,
		Raw:    raw,
	}, nil
}

// extractJSON returns the outermost brace window of the text. Models
// occasionally wrap the payload in prose or code fences even when asked
// for JSON only.
func extractJSON(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in output", ErrUnparseableResponse)
	}
	return json.RawMessage(text[start : end+1]), nil
}

// sortBandsByIndex orders bands by their reported index, keeping the
// reported order for equal indices.
func sortBandsByIndex(bands []DetectedBand) {
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].Index < bands[j].Index
	})
}
