package geometry

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// degenerateTangent2 is the squared length below which N x (1,0,0) is
// treated as zero and the fallback axis is used
const degenerateTangent2 = 1e-12

var (
	tangentReference = core.NewVec3(1, 0, 0)
	tangentFallback  = core.NewVec3(0, 0, 1)
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal
	Material *material.Material // Material of the plane

	tangentU core.Vec3
	tangentV core.Vec3
}

// NewPlane creates a new plane. The normal is normalized; a zero or
// non-finite normal is rejected.
func NewPlane(point, normal core.Vec3, mat *material.Material) (*Plane, error) {
	if !core.IsFinite(point) || !core.IsFinite(normal) {
		return nil, fmt.Errorf("%w: plane point %v normal %v is not finite", ErrDegenerateGeometry, point, normal)
	}
	length := normal.Norm()
	if length == 0 {
		return nil, fmt.Errorf("%w: plane normal has zero length", ErrDegenerateGeometry)
	}
	if mat == nil {
		return nil, fmt.Errorf("%w: plane has no material", ErrDegenerateGeometry)
	}

	n := normal.Mul(1 / length)
	tu, tv := planeTangents(n)
	return &Plane{
		Point:    point,
		Normal:   n,
		Material: mat,
		tangentU: tu,
		tangentV: tv,
	}, nil
}

// planeTangents builds the texture basis N x (1,0,0), N x (N x (1,0,0)).
// The basis is not normalized, so texture scale follows the plane's tilt.
func planeTangents(n core.Vec3) (core.Vec3, core.Vec3) {
	tu := n.Cross(tangentReference)
	if tu.Norm2() < degenerateTangent2 {
		tu = n.Cross(tangentFallback)
	}
	return tu, n.Cross(tu)
}

// Intersect tests the ray against the plane. A ray parallel to the plane,
// including one lying in it, never hits.
func (p *Plane) Intersect(ray core.Ray) (Candidate, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if denom == 0 {
		return Candidate{}, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
	if !(t >= 0) {
		return Candidate{}, false
	}

	return Candidate{
		Material: p.Material,
		Position: ray.At(t),
		Normal:   p.Normal,
		Dist2:    t * t,
		Kind:     PlanePrimitive,
		tangentU: p.tangentU,
		tangentV: p.tangentV,
	}, true
}
