package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ohmscope/ohmscope/pkg/decoder"
)

// Kind classifies an analyze failure for the caller.
type Kind string

const (
	KindInvalidImage        Kind = "invalid_image"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindUnparseableResponse Kind = "unparseable_response"
	KindUnrecognizedBands   Kind = "unrecognized_bands"
)

// status maps an error kind to its HTTP status: bad input is the caller's
// fault, upstream trouble is a gateway failure.
func (k Kind) status() int {
	switch k {
	case KindInvalidImage:
		return fiber.StatusBadRequest
	case KindUnrecognizedBands:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadGateway
	}
}

type errorInfo struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     errorInfo `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// fail writes a structured error response and records it.
func (s *Server) fail(c *fiber.Ctx, kind Kind, message string) error {
	s.metrics.Requests.WithLabelValues("error").Inc()
	s.metrics.Errors.WithLabelValues(string(kind)).Inc()

	reqID, _ := c.Locals("request_id").(string)
	s.logger.Warn("analyze failed",
		"kind", kind,
		"message", message,
		"request_id", reqID,
	)

	return c.Status(kind.status()).JSON(errorResponse{
		Error:     errorInfo{Kind: kind, Message: message},
		RequestID: reqID,
	})
}

// classifyDecodeError distinguishes an upstream that answered garbage from
// one that did not answer at all.
func classifyDecodeError(err error) Kind {
	if errors.Is(err, decoder.ErrUnparseableResponse) {
		return KindUnparseableResponse
	}
	return KindUpstreamUnavailable
}
