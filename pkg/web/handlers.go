package web

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ohmscope/ohmscope/pkg/decoder"
	"github.com/ohmscope/ohmscope/pkg/resistor"
)

// bandView is one detected band in the response.
type bandView struct {
	Color      string  `json:"color"`
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// AnalyzeResponse is the success payload of POST /api/analyze.
type AnalyzeResponse struct {
	RequestID      string          `json:"request_id"`
	Bands          []bandView      `json:"bands"`
	Colors         []string        `json:"colors"`
	Scheme         string          `json:"scheme,omitempty"`
	ValueOhms      float64         `json:"value_ohms"`
	ValueDisplay   string          `json:"value_display"`
	TolerancePct   float64         `json:"tolerance_pct"`
	SnappedOhms    float64         `json:"snapped_ohms"`
	SnappedDisplay string          `json:"snapped_display"`
	Used           string          `json:"used"`
	Model          string          `json:"model,omitempty"`
	ModelOutput    json.RawMessage `json:"model_output,omitempty"`
}

// handleAnalyze accepts a multipart resistor photo, decodes its bands via
// the upstream model, and computes the resistance value.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return s.fail(c, KindInvalidImage, "multipart field 'file' is required")
	}

	f, err := fh.Open()
	if err != nil {
		return s.fail(c, KindInvalidImage, "cannot open upload: "+err.Error())
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return s.fail(c, KindInvalidImage, "cannot read upload: "+err.Error())
	}

	jpegData, err := decoder.PrepareImage(data, s.maxImageSide)
	if err != nil {
		return s.fail(c, KindInvalidImage, "cannot decode image: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), s.timeout)
	defer cancel()

	start := time.Now()
	det, err := s.decoder.ReadBands(ctx, jpegData)
	if err != nil {
		return s.fail(c, classifyDecodeError(err), err.Error())
	}
	s.observeDecode(det, time.Since(start))

	valueBands := det.ValueBands()
	colors := make([]resistor.Color, len(valueBands))
	for i, b := range valueBands {
		colors[i] = resistor.NormalizeColor(b.ColorName)
	}
	colors = resistor.Normalize(colors)

	reading, err := resistor.Calculate(colors)
	if err != nil {
		return s.fail(c, KindUnrecognizedBands, err.Error())
	}

	s.metrics.Requests.WithLabelValues("ok").Inc()

	reqID, _ := c.Locals("request_id").(string)
	return c.JSON(AnalyzeResponse{
		RequestID:      reqID,
		Bands:          bandViews(det.Bands),
		Colors:         colorNames(colors),
		Scheme:         det.Scheme,
		ValueOhms:      reading.ValueOhms,
		ValueDisplay:   resistor.FormatOhms(reading.ValueOhms),
		TolerancePct:   reading.TolerancePct,
		SnappedOhms:    reading.SnappedOhms,
		SnappedDisplay: resistor.FormatOhms(reading.SnappedOhms),
		Used:           "gemini/" + det.Transport,
		Model:          det.Model,
		ModelOutput:    det.Raw,
	})
}

// handleRoot mirrors the original service's liveness shape.
func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": Version})
}

// handleHealthz is the liveness endpoint.
func (s *Server) handleHealthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleStatus reports service identity and the decoder fallback order.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	transports := []string{s.decoder.Transport()}
	if chain, ok := s.decoder.(*decoder.Chain); ok {
		transports = chain.Transports()
	}
	return c.JSON(fiber.Map{
		"name":       "ohmscope",
		"version":    Version,
		"transports": transports,
	})
}

// observeDecode records latency and fallback metrics for a successful
// decode.
func (s *Server) observeDecode(det *decoder.Detection, elapsed time.Duration) {
	s.metrics.DecodeLatency.WithLabelValues(det.Transport).Observe(elapsed.Seconds())
	if det.Transport == "rest" {
		s.metrics.Fallbacks.Inc()
	}
}

func bandViews(bands []decoder.DetectedBand) []bandView {
	out := make([]bandView, len(bands))
	for i, b := range bands {
		out[i] = bandView{
			Color:      string(resistor.NormalizeColor(b.ColorName)),
			Role:       b.Role,
			Confidence: b.Confidence,
		}
	}
	return out
}

func colorNames(colors []resistor.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = string(c)
	}
	return out
}
