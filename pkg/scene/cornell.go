package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// NewCornellScene creates a Cornell-style box from five planes with the
// camera standing in the open front
func NewCornellScene() *Scene {
	s := NewScene("cornell")
	s.SamplingConfig.Width = 400
	s.SamplingConfig.Height = 400

	// Create materials
	white := material.MustMaterial(material.Solid(core.Gray(0.73)), 0.9, 0)
	red := material.MustMaterial(material.Solid(core.NewColor(0.65, 0.05, 0.05)), 0.9, 0)
	green := material.MustMaterial(material.Solid(core.NewColor(0.12, 0.45, 0.15)), 0.9, 0)
	mirror := material.MustMaterial(material.Solid(core.Gray(0.9)), 0.1, 0.9)
	matte := material.MustMaterial(material.Solid(core.NewColor(0.8, 0.8, 0.6)), 0.9, 0.1)

	// Box spans x and y in [-2, 2], back wall at z = 6; normals face inward
	const half = 2.0
	s.mustPlane(core.NewVec3(0, half, 0), core.NewVec3(0, -1, 0), white) // floor
	s.mustPlane(core.NewVec3(0, -half, 0), core.NewVec3(0, 1, 0), white) // ceiling
	s.mustPlane(core.NewVec3(0, 0, 6), core.NewVec3(0, 0, -1), white)    // back wall
	s.mustPlane(core.NewVec3(-half, 0, 0), core.NewVec3(1, 0, 0), red)   // left wall
	s.mustPlane(core.NewVec3(half, 0, 0), core.NewVec3(-1, 0, 0), green) // right wall

	// Left sphere mirrored, right sphere matte
	s.mustSphere(core.NewVec3(-0.8, 1.2, 4.6), 0.8, mirror)
	s.mustSphere(core.NewVec3(0.9, 1.3, 3.6), 0.7, matte)

	// Ceiling light, slightly below the ceiling
	s.mustLight(core.NewVec3(0, -1.8, 4), core.Gray(1))

	return s
}
