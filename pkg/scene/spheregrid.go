package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lp = lp * lp * lp
	mp = mp * mp * mp
	sp = sp * sp * sp

	// LMS to linear RGB
	return core.NewColor(
		+4.0767416621*lp-3.3077115913*mp+0.2309699292*sp,
		-1.2684380046*lp+2.6097574011*mp-0.3413193965*sp,
		-0.0041960863*lp-0.7034186147*mp+1.7076147010*sp,
	).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of spheres resting on a floor, hue
// varying across x and chroma across depth
func NewSphereGridScene() *Scene {
	s := NewScene("spheregrid")
	s.SamplingConfig.Width = 800
	s.SamplingConfig.Height = 450

	floorY := 1.0
	floor := material.MustMaterial(material.Solid(core.Gray(0.5)), 0.8, 0.2)
	s.mustPlane(core.NewVec3(0, floorY, 0), core.NewVec3(0, -1, 0), floor)

	gridSize := 8
	targetArea := 6.0
	spacing := targetArea / float64(gridSize-1)
	radius := spacing * 0.35

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing + 4.0
			position := core.NewVec3(x, floorY-radius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			// Alternate the reflectivity for some variety
			reflectivity := 0.1 + 0.2*float64((i+j)%3)
			mat := material.MustMaterial(material.Solid(oklchToRGB(lightness, chroma, hue)), 0.8, reflectivity)
			s.mustSphere(position, radius, mat)
		}
	}

	s.mustLight(core.NewVec3(-4, -6, 2), core.Gray(0.8))
	s.mustLight(core.NewVec3(5, -5, 9), core.NewColor(0.45, 0.42, 0.35))

	return s
}
