package material

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCoefficient is returned for coefficients outside [0,1]
	ErrInvalidCoefficient = errors.New("coefficient must be in [0,1]")
	// ErrInvalidTexture is returned for a procedural texture without a pattern
	ErrInvalidTexture = errors.New("invalid texture")
)

// Material describes how a surface responds to light. A Material is
// immutable once built and is shared by pointer between primitives.
type Material struct {
	texture      Texture
	diffuse      float64
	reflectivity float64
}

// NewMaterial creates a material, rejecting coefficients outside [0,1]
func NewMaterial(texture Texture, diffuse, reflectivity float64) (*Material, error) {
	if !texture.valid() {
		return nil, fmt.Errorf("%w: %s texture has no pattern", ErrInvalidTexture, texture.Kind())
	}
	if err := checkCoefficient("diffuse", diffuse); err != nil {
		return nil, err
	}
	if err := checkCoefficient("reflectivity", reflectivity); err != nil {
		return nil, err
	}
	return &Material{
		texture:      texture,
		diffuse:      diffuse,
		reflectivity: reflectivity,
	}, nil
}

// MustMaterial is NewMaterial for literal scene definitions; it panics on error
func MustMaterial(texture Texture, diffuse, reflectivity float64) *Material {
	m, err := NewMaterial(texture, diffuse, reflectivity)
	if err != nil {
		panic(err)
	}
	return m
}

func checkCoefficient(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s = %v", ErrInvalidCoefficient, name, v)
	}
	return nil
}

// Texture returns the surface texture
func (m *Material) Texture() Texture {
	return m.texture
}

// Diffuse returns the Lambertian diffuse coefficient
func (m *Material) Diffuse() float64 {
	return m.diffuse
}

// Reflectivity returns the weight of the mirror-reflection contribution
func (m *Material) Reflectivity() float64 {
	return m.reflectivity
}
