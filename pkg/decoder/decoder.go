// Package decoder sends resistor photos to a hosted vision model and
// returns the detected color bands as structured data.
//
// Two providers cover the same capability over different transports: the
// structured-output API (transport "sdk") and the plain generateContent
// API (transport "rest"). A Chain tries them in order so a structured
// failure degrades to the plain transport instead of failing the request.
//
// Example usage:
//
//	primary, _ := decoder.NewGemini(decoder.WithAPIKey(key))
//	fallback, _ := decoder.NewREST(decoder.WithAPIKey(key))
//	chain, _ := decoder.NewChain(primary, fallback)
//	defer chain.Close()
//
//	det, _ := chain.ReadBands(ctx, jpegData)
package decoder

import (
	"context"
	"encoding/json"
)

// Provider reads resistor color bands from a JPEG image.
type Provider interface {
	// ReadBands submits the image and returns the detected bands.
	ReadBands(ctx context.Context, jpegData []byte) (*Detection, error)

	// Transport identifies the decoding path ("sdk", "rest", ...).
	Transport() string

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// DetectedBand is one color band as reported by the model.
type DetectedBand struct {
	Index      int     `json:"index"`
	ColorName  string  `json:"color_name"`
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// Band roles the model may assign.
const (
	RoleDigit      = "digit"
	RoleMultiplier = "multiplier"
	RoleTolerance  = "tolerance"
	RoleTempco     = "tempco"
)

// Detection is the structured result of one decode call.
type Detection struct {
	// Bands in the order reported by the model.
	Bands []DetectedBand

	// Scheme is the band scheme when reported ("4-band", "5-band", ...).
	Scheme string

	// Transport is the decoding path that produced this result.
	Transport string

	// Raw is the JSON payload extracted from the model output.
	Raw json.RawMessage

	// Model used for the successful call.
	Model string

	// LatencyMs is the upstream response time in milliseconds.
	LatencyMs int64
}

// ValueBands returns the bands relevant to value computation: digit,
// multiplier, and tolerance roles, ordered by index. Tempco and unknown
// roles are dropped.
func (d *Detection) ValueBands() []DetectedBand {
	out := make([]DetectedBand, 0, len(d.Bands))
	for _, b := range d.Bands {
		switch b.Role {
		case RoleDigit, RoleMultiplier, RoleTolerance:
			out = append(out, b)
		}
	}
	sortBandsByIndex(out)
	return out
}
