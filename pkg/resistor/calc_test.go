package resistor

import (
	"errors"
	"testing"
)

func TestCalculateFourBand(t *testing.T) {
	tests := []struct {
		name    string
		colors  []Color
		ohms    float64
		tol     float64
		snapped float64
	}{
		{"1k 1%", []Color{Brown, Black, Red, Brown}, 1000, 1.0, 1000},
		{"47k 5%", []Color{Yellow, Violet, Orange, Gold}, 47000, 5.0, 47000},
		{"220 2%", []Color{Red, Red, Brown, Red}, 220, 2.0, 220},
		{"10M 10%", []Color{Brown, Black, Blue, Silver}, 1e7, 10.0, 1e7},
		{"5.6 0.5%", []Color{Green, Blue, Gold, Green}, 5.6, 0.5, 5.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.colors)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if !approx(r.ValueOhms, tt.ohms) {
				t.Errorf("ValueOhms = %v, want %v", r.ValueOhms, tt.ohms)
			}
			if r.TolerancePct != tt.tol {
				t.Errorf("TolerancePct = %v, want %v", r.TolerancePct, tt.tol)
			}
			if !approx(r.SnappedOhms, tt.snapped) {
				t.Errorf("SnappedOhms = %v, want %v", r.SnappedOhms, tt.snapped)
			}
		})
	}
}

func TestCalculateFiveBand(t *testing.T) {
	// green-blue-black-black-brown: 560 * 1 = 560 Ω, 1%
	r, err := Calculate([]Color{Green, Blue, Black, Black, Brown})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if r.ValueOhms != 560 {
		t.Errorf("ValueOhms = %v, want 560", r.ValueOhms)
	}
	if r.TolerancePct != 1.0 {
		t.Errorf("TolerancePct = %v, want 1", r.TolerancePct)
	}
}

func TestCalculateThreeBandDefaultTolerance(t *testing.T) {
	r, err := Calculate([]Color{Brown, Black, Red})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if r.ValueOhms != 1000 {
		t.Errorf("ValueOhms = %v, want 1000", r.ValueOhms)
	}
	if r.TolerancePct != DefaultTolerancePct {
		t.Errorf("TolerancePct = %v, want default %v", r.TolerancePct, DefaultTolerancePct)
	}
}

func TestCalculateSixBandIgnoresTempco(t *testing.T) {
	// Sixth band (red tempco) must not change the value.
	r, err := Calculate([]Color{Green, Blue, Black, Black, Brown, Red})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if r.ValueOhms != 560 {
		t.Errorf("ValueOhms = %v, want 560", r.ValueOhms)
	}
	if r.TolerancePct != 1.0 {
		t.Errorf("TolerancePct = %v, want 1", r.TolerancePct)
	}
}

func TestCalculateUnrecognized(t *testing.T) {
	tests := []struct {
		name   string
		colors []Color
	}{
		{"unknown color", []Color{Color("magenta"), Black, Red, Brown}},
		{"gold digit", []Color{Gold, Black, Red, Brown}},
		{"too few bands", []Color{Brown, Black}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.colors)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrUnrecognizedBands) {
				t.Errorf("expected ErrUnrecognizedBands, got %v", err)
			}
		})
	}
}

func TestFormatOhms(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1000, "1.00 kΩ"},
		{4.7e6, "4.70 MΩ"},
		{1e9, "1.00 GΩ"},
		{560, "560.00 Ω"},
		{0.5, "0.50 Ω"},
	}

	for _, tt := range tests {
		if got := FormatOhms(tt.v); got != tt.want {
			t.Errorf("FormatOhms(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9*(1+b)
}
