package core

import (
	"math"
	"testing"
)

func TestColor_ToRGB8(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		r, g, b uint8
	}{
		{"black", Black, 0, 0, 0},
		{"white", NewColor(1, 1, 1), 255, 255, 255},
		{"overexposed clamps", NewColor(3, 1.5, 1.0001), 255, 255, 255},
		{"negative clamps", NewColor(-0.5, -1, 0), 0, 0, 0},
		{"half truncates", NewColor(0.5, 0.25, 0.1), 127, 63, 25},
		{"NaN is black", NewColor(math.NaN(), 0, 0), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.color.ToRGB8()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.2, 0.4, 0.6)
	b := NewColor(0.5, 0.5, 2.0)

	got := a.Add(b)
	if math.Abs(got.R-0.7) > 1e-12 || math.Abs(got.G-0.9) > 1e-12 || math.Abs(got.B-2.6) > 1e-12 {
		t.Errorf("Add: got %v", got)
	}

	got = a.MultiplyColor(b)
	if math.Abs(got.R-0.1) > 1e-12 || math.Abs(got.G-0.2) > 1e-12 || math.Abs(got.B-1.2) > 1e-12 {
		t.Errorf("MultiplyColor: got %v", got)
	}

	if !Gray(0).IsBlack() {
		t.Error("Gray(0) should be black")
	}
	if Gray(0.1).IsBlack() {
		t.Error("Gray(0.1) should not be black")
	}
}
