package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// NewMirrorsScene creates reflective spheres standing between two facing
// mirror walls, so reflections repeat until the depth limit
func NewMirrorsScene() *Scene {
	s := NewScene("mirrors")
	s.SamplingConfig.Width = 800
	s.SamplingConfig.Height = 450

	checker := material.MustMaterial(
		material.Procedural("checker", material.CheckerPattern(8, core.Gray(0.9), core.Gray(0.1))),
		0.9, 0.05)
	wall := material.MustMaterial(material.Solid(core.NewColor(0.6, 0.7, 0.8)), 0.1, 0.85)
	gold := material.MustMaterial(material.Solid(core.NewColor(0.9, 0.7, 0.3)), 0.5, 0.5)
	chrome := material.MustMaterial(material.Solid(core.Gray(0.95)), 0.05, 0.95)
	noise := material.MustMaterial(material.Procedural("noise", material.NoisePattern), 0.85, 0.1)

	// Floor, then left and right mirrors facing each other
	s.mustPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), checker)
	s.mustPlane(core.NewVec3(-3.5, 0, 0), core.NewVec3(1, 0, 0), wall)
	s.mustPlane(core.NewVec3(3.5, 0, 0), core.NewVec3(-1, 0, 0), wall)

	s.mustSphere(core.NewVec3(-1.2, 0.2, 5), 0.8, gold)
	s.mustSphere(core.NewVec3(1.1, 0, 6), 1, chrome)
	s.mustSphere(core.NewVec3(0, 0.5, 3.5), 0.5, noise)

	s.mustLight(core.NewVec3(0, -4, 2), core.Gray(0.9))
	s.mustLight(core.NewVec3(-2, -2, 8), core.NewColor(0.3, 0.3, 0.45))

	return s
}
