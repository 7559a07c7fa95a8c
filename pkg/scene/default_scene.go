package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// World +y points down the image, so floors sit at positive y with an
// upward (negative y) normal and lights hang at negative y.

// NewDefaultScene creates a default scene with spheres on a noise floor and two lights
func NewDefaultScene() *Scene {
	s := NewScene("default")
	s.SamplingConfig.Width = 800
	s.SamplingConfig.Height = 450

	// Create materials
	floor := material.MustMaterial(material.Procedural("noise", material.NoisePattern), 0.9, 0.1)
	backWall := material.MustMaterial(
		material.Procedural("checker", material.CheckerPattern(4, core.Gray(0.8), core.NewColor(0.2, 0.3, 0.5))),
		0.8, 0)
	red := material.MustMaterial(material.Solid(core.NewColor(0.9, 0.2, 0.15)), 0.8, 0.3)
	mirror := material.MustMaterial(material.Solid(core.Gray(0.9)), 0.2, 0.8)
	xor := material.MustMaterial(material.Procedural("xor", material.XORPattern), 0.9, 0)

	s.mustPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), floor)
	s.mustPlane(core.NewVec3(0, 0, 14), core.NewVec3(0, 0, -1), backWall)

	s.mustSphere(core.NewVec3(-1.6, 0, 5), 1, red)
	s.mustSphere(core.NewVec3(0.4, -0.2, 6.5), 1.2, mirror)
	s.mustSphere(core.NewVec3(1.9, 0.4, 4.2), 0.6, xor)

	s.mustLight(core.NewVec3(-3, -4, 1), core.Gray(0.8))
	s.mustLight(core.NewVec3(4, -3, 2), core.NewColor(0.5, 0.45, 0.35))

	return s
}

// NewSingleSphereScene creates one solid red sphere in front of the camera
// lit by a single white light
func NewSingleSphereScene() *Scene {
	s := NewScene("single")
	s.SamplingConfig.Width = 320
	s.SamplingConfig.Height = 240
	s.SamplingConfig.Antialias = false

	red := material.MustMaterial(material.Solid(core.NewColor(1, 0, 0)), 0.8, 0)
	s.mustSphere(core.NewVec3(0, 0, 3), 1, red)
	s.mustLight(core.NewVec3(-2, -2, -1), core.Gray(1))

	return s
}

// NewSphereRowScene creates four unit spheres receding to the right
func NewSphereRowScene() *Scene {
	s := NewScene("spheres")
	s.SamplingConfig.Width = 1920
	s.SamplingConfig.Height = 1080

	gray := material.MustMaterial(material.Solid(core.Gray(0.85)), 0.9, 0)
	for _, c := range []core.Vec3{
		core.NewVec3(-1.5, 0, 1),
		core.NewVec3(0, 0, 3),
		core.NewVec3(1.5, 0, 5),
		core.NewVec3(3, 0, 7),
	} {
		s.mustSphere(c, 1, gray)
	}
	s.mustLight(core.NewVec3(-2, -2, -1), core.Gray(1))

	return s
}
