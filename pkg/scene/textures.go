package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// NewTextureTestScene creates a row of spheres, one per procedural texture,
// above a checkerboard floor
func NewTextureTestScene() *Scene {
	s := NewScene("textures")
	s.SamplingConfig.Width = 800
	s.SamplingConfig.Height = 450

	// Create procedural textures
	checkerboard := material.CheckerPattern(8, core.Gray(0.9), core.NewColor(0.2, 0.2, 0.8))
	fineBrickPattern := material.CheckerPattern(2,
		core.NewColor(0.7, 0.3, 0.1),  // Orange
		core.NewColor(0.5, 0.2, 0.05), // Dark brown
	)

	// Create textured materials
	checkerMat := material.MustMaterial(material.Procedural("checker", checkerboard), 0.9, 0)
	xorMat := material.MustMaterial(material.Procedural("xor", material.XORPattern), 0.9, 0)
	noiseMat := material.MustMaterial(material.Procedural("noise", material.NoisePattern), 0.9, 0)
	uvDebugMat := material.MustMaterial(material.Procedural("uvdebug", material.UVDebugPattern), 0.9, 0)
	brickMat := material.MustMaterial(material.Procedural("brick", fineBrickPattern), 0.8, 0.1)

	// All spheres in a single row, left to right
	for i, mat := range []*material.Material{checkerMat, xorMat, noiseMat, uvDebugMat} {
		x := -3.3 + 2.2*float64(i)
		s.mustSphere(core.NewVec3(x, 0, 6), 1, mat)
	}

	// Ground with brick pattern, a wall behind with the checker
	s.mustPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), brickMat)
	s.mustPlane(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, -1), checkerMat)

	s.mustLight(core.NewVec3(0, -5, 1), core.Gray(0.9))
	s.mustLight(core.NewVec3(-6, -2, 4), core.Gray(0.3))

	return s
}
