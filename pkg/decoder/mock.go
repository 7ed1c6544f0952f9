package decoder

import (
	"context"
	"sync"
	"time"
)

// Mock implements Provider for testing.
type Mock struct {
	// ReadBandsFunc is called when ReadBands is invoked.
	ReadBandsFunc func(ctx context.Context, jpegData []byte) (*Detection, error)

	// HealthFunc is called when Health is invoked.
	HealthFunc func(ctx context.Context) error

	// CloseFunc is called when Close is invoked.
	CloseFunc func() error

	// TransportName overrides the reported transport (default "mock").
	TransportName string

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records a method invocation.
type MockCall struct {
	Method string
	Time   time.Time
}

// NewMock creates a mock provider that reports a textbook 1 kΩ resistor.
func NewMock() *Mock {
	return &Mock{
		ReadBandsFunc: func(ctx context.Context, jpegData []byte) (*Detection, error) {
			return &Detection{
				Bands: []DetectedBand{
					{Index: 0, ColorName: "brown", Role: RoleDigit, Confidence: 0.98},
					{Index: 1, ColorName: "black", Role: RoleDigit, Confidence: 0.97},
					{Index: 2, ColorName: "red", Role: RoleMultiplier, Confidence: 0.95},
					{Index: 3, ColorName: "gold", Role: RoleTolerance, Confidence: 0.92},
				},
				Scheme:    "4-band",
				Transport: "mock",
			}, nil
		},
		HealthFunc: func(ctx context.Context) error { return nil },
	}
}

// WithError returns a mock whose every method returns the given error.
func WithError(err error) *Mock {
	return &Mock{
		ReadBandsFunc: func(ctx context.Context, jpegData []byte) (*Detection, error) {
			return nil, err
		},
		HealthFunc: func(ctx context.Context) error { return err },
	}
}

// ReadBands calls ReadBandsFunc and records the call.
func (m *Mock) ReadBands(ctx context.Context, jpegData []byte) (*Detection, error) {
	m.record("ReadBands")
	if m.ReadBandsFunc != nil {
		return m.ReadBandsFunc(ctx, jpegData)
	}
	return nil, WrapError(m.Transport(), ErrUnparseableResponse)
}

// Transport identifies the decoding path.
func (m *Mock) Transport() string {
	if m.TransportName != "" {
		return m.TransportName
	}
	return "mock"
}

// Health calls HealthFunc and records the call.
func (m *Mock) Health(ctx context.Context) error {
	m.record("Health")
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// Close calls CloseFunc and records the call.
func (m *Mock) Close() error {
	m.record("Close")
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// record adds a call to the tracking list.
func (m *Mock) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Method: method, Time: time.Now()})
}

// CallCount returns the number of times a method was called.
func (m *Mock) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

// Reset clears all recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// Verify Mock implements Provider at compile time.
var _ Provider = (*Mock)(nil)
