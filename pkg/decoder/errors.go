package decoder

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoAPIKey is returned when an API key is required but missing.
	ErrNoAPIKey = errors.New("decoder: API key required")

	// ErrNoProviders is returned when a chain is built without providers.
	ErrNoProviders = errors.New("decoder: at least one provider required")

	// ErrInvalidImage is returned when image bytes cannot be decoded.
	ErrInvalidImage = errors.New("decoder: invalid image")

	// ErrUnparseableResponse is returned when the model output does not
	// contain a usable band payload.
	ErrUnparseableResponse = errors.New("decoder: unparseable model response")
)

// APIError represents an error response from the upstream API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Message is the error message from the API.
	Message string

	// Transport identifies which decoding path returned the error.
	Transport string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("decoder [%s]: API error %d: %s", e.Transport, e.StatusCode, e.Message)
}

// IsRateLimited returns true if this is a rate limit error (HTTP 429).
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsUnauthorized returns true if this is an authentication error (HTTP 401).
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsServerError returns true if this is a server-side error (HTTP 5xx).
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// TransportError wraps an error with decoding-path context.
type TransportError struct {
	Transport string
	Err       error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("decoder [%s]: %v", e.Transport, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with decoding-path context.
func WrapError(transport string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Transport: transport, Err: err}
}

// ChainError aggregates errors from all providers in a chain.
type ChainError struct {
	Errors []error
}

// Error implements the error interface.
func (e *ChainError) Error() string {
	if len(e.Errors) == 0 {
		return "decoder chain: no errors recorded"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("decoder chain: %v", e.Errors[0])
	}
	return fmt.Sprintf("decoder chain: all %d providers failed, last error: %v",
		len(e.Errors), e.Errors[len(e.Errors)-1])
}

// Unwrap returns the last error in the chain.
func (e *ChainError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[len(e.Errors)-1]
}
