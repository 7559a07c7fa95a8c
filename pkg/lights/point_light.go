package lights

import (
	"errors"
	"fmt"

	"github.com/df07/glimmer/pkg/core"
)

// ErrInvalidLight is returned for lights that cannot illuminate anything
var ErrInvalidLight = errors.New("invalid light")

// PointLight is an idealized zero-size emitter. It has no distance falloff;
// only occlusion and the cosine term attenuate it.
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a point light, rejecting non-finite positions
func NewPointLight(position core.Vec3, color core.Color) (PointLight, error) {
	if !core.IsFinite(position) {
		return PointLight{}, fmt.Errorf("%w: position %v is not finite", ErrInvalidLight, position)
	}
	return PointLight{Position: position, Color: color}, nil
}

// Toward returns the unit direction from point to the light and the squared
// distance between them. A point at the light's position gets a zero
// direction.
func (l PointLight) Toward(point core.Vec3) (core.Vec3, float64) {
	d := l.Position.Sub(point)
	return d.Normalize(), d.Norm2()
}
