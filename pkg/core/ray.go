package core

import (
	"errors"
	"fmt"
)

// ErrDegenerateDirection is returned when a ray direction cannot be normalized
var ErrDegenerateDirection = errors.New("degenerate ray direction")

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) (Ray, error) {
	if !IsFinite(origin) || !IsFinite(direction) {
		return Ray{}, fmt.Errorf("%w: origin %v direction %v", ErrDegenerateDirection, origin, direction)
	}
	length := direction.Norm()
	if length == 0 {
		return Ray{}, fmt.Errorf("%w: zero-length direction", ErrDegenerateDirection)
	}
	return Ray{Origin: origin, Direction: direction.Mul(1 / length)}, nil
}

// NewUnitRay builds a ray from a direction the caller already normalized
func NewUnitRay(origin, unitDirection Vec3) Ray {
	return Ray{Origin: origin, Direction: unitDirection}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
