package decoder

import (
	"context"
	"log/slog"
)

// Chain tries multiple providers in order until one succeeds.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChain creates a provider chain.
// At least one provider is required.
func NewChain(providers ...Provider) (*Chain, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	return &Chain{
		providers: providers,
		logger:    slog.Default().With("component", "decoder.chain"),
	}, nil
}

// NewChainWithLogger creates a provider chain with a custom logger.
func NewChainWithLogger(logger *slog.Logger, providers ...Provider) (*Chain, error) {
	chain, err := NewChain(providers...)
	if err != nil {
		return nil, err
	}
	chain.logger = logger.With("component", "decoder.chain")
	return chain, nil
}

// ReadBands tries each provider until one succeeds. The returned
// Detection carries the transport of the provider that answered.
func (c *Chain) ReadBands(ctx context.Context, jpegData []byte) (*Detection, error) {
	var errors []error

	for i, p := range c.providers {
		det, err := p.ReadBands(ctx, jpegData)
		if err == nil {
			if i > 0 {
				c.logger.Info("fallback transport succeeded",
					"transport", p.Transport(),
					"provider_index", i,
				)
			}
			return det, nil
		}

		errors = append(errors, err)
		c.logger.Warn("provider failed, trying next",
			"transport", p.Transport(),
			"provider_index", i,
			"error", err,
		)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, &ChainError{Errors: errors}
}

// Transport identifies the chain as a whole.
func (c *Chain) Transport() string { return "chain" }

// Transports lists the decoding paths in fallback order.
func (c *Chain) Transports() []string {
	out := make([]string, len(c.providers))
	for i, p := range c.providers {
		out[i] = p.Transport()
	}
	return out
}

// Health checks all providers and returns an error only when every one is
// unhealthy.
func (c *Chain) Health(ctx context.Context) error {
	var healthy int
	var lastErr error

	for _, p := range c.providers {
		if err := p.Health(ctx); err != nil {
			lastErr = err
		} else {
			healthy++
		}
	}

	if healthy == 0 {
		return WrapError("chain", lastErr)
	}

	c.logger.Debug("health check complete",
		"healthy", healthy,
		"total", len(c.providers),
	)

	return nil
}

// Close closes all providers.
func (c *Chain) Close() error {
	var lastErr error
	for _, p := range c.providers {
		if err := p.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Providers returns the list of providers in the chain.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Verify Chain implements Provider at compile time.
var _ Provider = (*Chain)(nil)
