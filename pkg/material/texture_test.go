package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

func TestTexture_SolidIgnoresUV(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	texture := Solid(red)

	if texture.Kind() != SolidTexture {
		t.Errorf("Expected solid kind, got %v", texture.Kind())
	}

	for _, uv := range []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(0.5, 0.25),
		core.NewVec2(-3, 100),
	} {
		if got := texture.Evaluate(uv); got != red {
			t.Errorf("UV%v: expected %v, got %v", uv, red, got)
		}
	}
}

func TestTexture_ProceduralUsesPattern(t *testing.T) {
	texture := Procedural("uvdebug", UVDebugPattern)

	if texture.Kind() != ProceduralTexture {
		t.Errorf("Expected procedural kind, got %v", texture.Kind())
	}
	if texture.Name() != "uvdebug" {
		t.Errorf("Expected name uvdebug, got %s", texture.Name())
	}

	got := texture.Evaluate(core.NewVec2(0.25, 0.75))
	if got != core.NewColor(0.25, 0.75, 0) {
		t.Errorf("Expected (0.25,0.75,0), got %v", got)
	}
}

func TestNoisePattern_KnownValues(t *testing.T) {
	tests := []struct {
		uv   core.Vec2
		byte uint8
	}{
		{core.NewVec2(0, 0), 0},
		{core.NewVec2(0.5, 0.5), 245},
		{core.NewVec2(0.1, 0.9), 17},
		{core.NewVec2(0.25, 0.75), 93},
		{core.NewVec2(1.0, 1.0), 203},
		{core.NewVec2(-0.3, 0.2), 116}, // negative u saturates to cell 0
		{core.NewVec2(3.7, 12.25), 153},
	}

	for _, tt := range tests {
		got := NoisePattern(tt.uv)
		expected := float64(tt.byte) / 255
		if got.R != expected || got.G != expected || got.B != expected {
			t.Errorf("UV%v: expected gray %v (byte %d), got %v", tt.uv, expected, tt.byte, got)
		}
	}
}

func TestNoisePattern_Reproducible(t *testing.T) {
	for i := 0; i < 100; i++ {
		uv := core.NewVec2(float64(i)*0.037, float64(i)*0.091)
		first := NoisePattern(uv)
		for j := 0; j < 5; j++ {
			if again := NoisePattern(uv); again != first {
				t.Fatalf("UV%v: evaluation %d returned %v, first returned %v", uv, j, again, first)
			}
		}
	}
}

func TestNoisePattern_ConstantWithinCell(t *testing.T) {
	// Both points fall in lattice cell (1, 2)
	a := NoisePattern(core.NewVec2(1.0/16+0.001, 2.0/16+0.001))
	b := NoisePattern(core.NewVec2(2.0/16-0.001, 3.0/16-0.001))
	if a != b {
		t.Errorf("Expected identical colour within a cell, got %v and %v", a, b)
	}
}

func TestXORPattern_KnownValues(t *testing.T) {
	tests := []struct {
		uv   core.Vec2
		byte uint8
	}{
		{core.NewVec2(0, 0), 0},
		{core.NewVec2(0.5, 0.5), 0},
		{core.NewVec2(0.1, 0.9), 252},
		{core.NewVec2(0.25, 0.75), 128},
		{core.NewVec2(-0.3, 0.2), 51},
		{core.NewVec2(3.7, 12.25), 0}, // both saturate to 255
	}

	for _, tt := range tests {
		got := XORPattern(tt.uv)
		expected := float64(tt.byte) / 255
		if got.R != expected || got.G != expected || got.B != expected {
			t.Errorf("UV%v: expected gray %v (byte %d), got %v", tt.uv, expected, tt.byte, got)
		}
	}
}

func TestCheckerPattern(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.Black
	pattern := CheckerPattern(2, white, black)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Color
	}{
		{"origin cell", core.NewVec2(0.1, 0.1), white},
		{"right neighbour", core.NewVec2(0.6, 0.1), black},
		{"diagonal", core.NewVec2(0.6, 0.6), white},
		{"negative cell", core.NewVec2(-0.1, 0.1), black},
		{"negative diagonal", core.NewVec2(-0.1, -0.1), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pattern(tt.uv); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		if _, ok := LookupPattern(name); !ok {
			t.Errorf("Listed pattern %q not found", name)
		}
	}

	noise, ok := LookupPattern("noise")
	if !ok {
		t.Fatal("Expected noise pattern to be registered")
	}
	uv := core.NewVec2(0.5, 0.5)
	if noise(uv) != NoisePattern(uv) {
		t.Error("Registered noise pattern differs from NoisePattern")
	}

	if _, ok := LookupPattern("marble"); ok {
		t.Error("Expected unknown pattern lookup to fail")
	}
}

func TestNewMaterial_Validation(t *testing.T) {
	solid := Solid(core.NewColor(1, 0, 0))

	tests := []struct {
		name         string
		texture      Texture
		diffuse      float64
		reflectivity float64
		expectErr    error
	}{
		{"valid", solid, 0.8, 0.2, nil},
		{"edges", solid, 0, 1, nil},
		{"diffuse above one", solid, 1.1, 0, ErrInvalidCoefficient},
		{"negative reflectivity", solid, 0.5, -0.1, ErrInvalidCoefficient},
		{"NaN diffuse", solid, math.NaN(), 0, ErrInvalidCoefficient},
		{"procedural without pattern", Procedural("broken", nil), 0.5, 0, ErrInvalidTexture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMaterial(tt.texture, tt.diffuse, tt.reflectivity)
			if tt.expectErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if m.Diffuse() != tt.diffuse || m.Reflectivity() != tt.reflectivity {
					t.Errorf("Expected (%v,%v), got (%v,%v)", tt.diffuse, tt.reflectivity, m.Diffuse(), m.Reflectivity())
				}
				return
			}
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("Expected %v, got %v", tt.expectErr, err)
			}
			if m != nil {
				t.Errorf("Expected nil material on error, got %v", m)
			}
		})
	}
}

func TestMustMaterial_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustMaterial to panic on invalid coefficient")
		}
	}()
	MustMaterial(Solid(core.Black), 2, 0)
}
