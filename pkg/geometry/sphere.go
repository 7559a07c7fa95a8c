package geometry

import (
	"fmt"
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere, rejecting non-positive or non-finite radii
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if !core.IsFinite(center) {
		return nil, fmt.Errorf("%w: sphere center %v is not finite", ErrDegenerateGeometry, center)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius %v must be positive", ErrDegenerateGeometry, radius)
	}
	if mat == nil {
		return nil, fmt.Errorf("%w: sphere has no material", ErrDegenerateGeometry)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Intersect tests the ray against the sphere.
//
// The test exits early when the ray origin is past the centre along the ray
// direction, so a ray starting outside and pointing away never hits, and the
// sphere is only ever hit on the side facing the origin.
func (s *Sphere) Intersect(ray core.Ray) (Candidate, bool) {
	p := ray.Origin.Sub(s.Center)
	pd := p.Dot(ray.Direction)
	if pd > 0 {
		return Candidate{}, false
	}

	// Closest approach of the ray line to the centre
	r2 := s.Radius * s.Radius
	a := p.Sub(ray.Direction.Mul(pd))
	a2 := a.Dot(a)
	if a2 > r2 {
		return Candidate{}, false
	}

	h := math.Sqrt(r2 - a2)
	offset := a.Sub(ray.Direction.Mul(h))
	position := s.Center.Add(offset)

	return Candidate{
		Material: s.Material,
		Position: position,
		Normal:   offset.Mul(1 / s.Radius),
		Dist2:    position.Sub(ray.Origin).Norm2(),
		Kind:     SpherePrimitive,
	}, true
}
