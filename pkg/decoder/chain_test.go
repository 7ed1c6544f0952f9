package decoder

import (
	"context"
	"errors"
	"testing"
)

func TestChainFallback(t *testing.T) {
	ctx := context.Background()

	// First provider fails
	failing := WithError(errors.New("structured transport failed"))
	failing.TransportName = "sdk"

	// Second provider succeeds
	working := NewMock()
	working.TransportName = "rest"
	working.ReadBandsFunc = func(ctx context.Context, jpegData []byte) (*Detection, error) {
		return &Detection{
			Bands: []DetectedBand{
				{Index: 0, ColorName: "brown", Role: RoleDigit, Confidence: 0.9},
			},
			Transport: "rest",
		}, nil
	}

	chain, err := NewChain(failing, working)
	if err != nil {
		t.Fatalf("Failed to create chain: %v", err)
	}
	defer chain.Close()

	det, err := chain.ReadBands(ctx, []byte("jpeg"))
	if err != nil {
		t.Fatalf("Chain read failed: %v", err)
	}

	if det.Transport != "rest" {
		t.Errorf("Transport = %q, want %q", det.Transport, "rest")
	}
	if working.CallCount("ReadBands") != 1 {
		t.Errorf("fallback provider called %d times, want 1", working.CallCount("ReadBands"))
	}
}

func TestChainAllFail(t *testing.T) {
	ctx := context.Background()

	p1 := WithError(errors.New("provider 1 failed"))
	p2 := WithError(errors.New("provider 2 failed"))

	chain, _ := NewChain(p1, p2)
	defer chain.Close()

	_, err := chain.ReadBands(ctx, []byte("jpeg"))
	if err == nil {
		t.Fatal("Expected error when all providers fail")
	}

	chainErr, ok := err.(*ChainError)
	if !ok {
		t.Fatalf("Expected ChainError, got %T", err)
	}

	if len(chainErr.Errors) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(chainErr.Errors))
	}
}

func TestChainUnwrapsLastError(t *testing.T) {
	ctx := context.Background()

	p1 := WithError(errors.New("network down"))
	p2 := WithError(WrapError("rest", ErrUnparseableResponse))

	chain, _ := NewChain(p1, p2)
	defer chain.Close()

	_, err := chain.ReadBands(ctx, []byte("jpeg"))
	if !errors.Is(err, ErrUnparseableResponse) {
		t.Errorf("errors.Is should see the last provider error through the chain, got %v", err)
	}
}

func TestChainEmpty(t *testing.T) {
	_, err := NewChain()
	if err == nil {
		t.Error("Expected error for empty chain")
	}
	if !errors.Is(err, ErrNoProviders) {
		t.Errorf("Expected ErrNoProviders, got %v", err)
	}
}

func TestChainHealth(t *testing.T) {
	ctx := context.Background()

	healthy := NewMock()
	unhealthy := WithError(errors.New("unhealthy"))

	chain, _ := NewChain(healthy, unhealthy)
	defer chain.Close()

	if err := chain.Health(ctx); err != nil {
		t.Errorf("Health check should pass with at least one healthy provider: %v", err)
	}
}

func TestChainHealthAllUnhealthy(t *testing.T) {
	ctx := context.Background()

	p1 := WithError(errors.New("unhealthy 1"))
	p2 := WithError(errors.New("unhealthy 2"))

	chain, _ := NewChain(p1, p2)
	defer chain.Close()

	if err := chain.Health(ctx); err == nil {
		t.Error("Health check should fail when all providers are unhealthy")
	}
}

func TestChainTransports(t *testing.T) {
	p1 := NewMock()
	p1.TransportName = "sdk"
	p2 := NewMock()
	p2.TransportName = "rest"

	chain, _ := NewChain(p1, p2)
	defer chain.Close()

	got := chain.Transports()
	if len(got) != 2 || got[0] != "sdk" || got[1] != "rest" {
		t.Errorf("Transports = %v, want [sdk rest]", got)
	}
}
