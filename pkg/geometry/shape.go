package geometry

import (
	"errors"
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// ErrDegenerateGeometry is returned when a primitive cannot describe a surface
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Hit contains information about the nearest ray-object intersection
type Hit struct {
	Material *material.Material // Material of the hit object
	Position core.Vec3          // Point of intersection
	Distance float64            // Distance from the ray origin
	Normal   core.Vec3          // Unit surface normal
	UV       core.Vec2          // Surface coordinates for texturing
	Kind     PrimitiveKind      // Shape that produced the hit
}

// PrimitiveKind names the closed set of primitive shapes
type PrimitiveKind uint8

const (
	SpherePrimitive PrimitiveKind = iota
	PlanePrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case SpherePrimitive:
		return "sphere"
	case PlanePrimitive:
		return "plane"
	default:
		return "unknown"
	}
}

// Candidate is an intersection that has not been selected yet. Ordering only
// needs the squared distance, so the square root and uv wait for Resolve.
type Candidate struct {
	Material *material.Material
	Position core.Vec3
	Normal   core.Vec3
	Dist2    float64
	Kind     PrimitiveKind

	tangentU core.Vec3
	tangentV core.Vec3
}

// Resolve turns the candidate into a full Hit
func (c Candidate) Resolve() *Hit {
	var uv core.Vec2
	switch c.Kind {
	case PlanePrimitive:
		uv = planarUV(c.Position, c.tangentU, c.tangentV)
	default:
		uv = sphericalUV(c.Normal)
	}
	return &Hit{
		Material: c.Material,
		Position: c.Position,
		Distance: math.Sqrt(c.Dist2),
		Normal:   c.Normal,
		UV:       uv,
		Kind:     c.Kind,
	}
}

// sphericalUV maps a unit normal to longitude/latitude coordinates
func sphericalUV(n core.Vec3) core.Vec2 {
	y := max(-1, min(1, n.Y))
	return core.Vec2{
		U: 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi),
		V: 0.5 - math.Asin(y)/math.Pi,
	}
}

// planarUVScale tiles plane textures every 8 world units
const planarUVScale = 1.0 / 8.0

func planarUV(position, tangentU, tangentV core.Vec3) core.Vec2 {
	return core.Vec2{
		U: tangentU.Dot(position) * planarUVScale,
		V: tangentV.Dot(position) * planarUVScale,
	}
}
