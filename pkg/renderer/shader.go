package renderer

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	CastRay(ray core.Ray) (*geometry.Hit, bool)
	Occluded(ray core.Ray, maxDist2 float64) bool
	GetLights() []lights.PointLight
}

// ShadingMode selects what a pixel shows
type ShadingMode int

const (
	// ShadeLit is ambient + diffuse + shadows + reflection
	ShadeLit ShadingMode = iota
	// ShadeDepth is a grey ramp that darkens 10 levels per unit of distance
	ShadeDepth
)

// depthFalloff is the number of 8-bit grey levels lost per unit of distance
const depthFalloff = 10.0

// ShadingConfig contains the constants of the lighting model
type ShadingConfig struct {
	Ambient         float64     // Fraction of the base colour added unconditionally
	Epsilon         float64     // Offset for secondary ray origins
	MaxDepth        int         // Reflection recursion limit
	Background      core.Color  // Colour of rays that hit nothing
	ClampBackfacing bool        // Clamp the diffuse cosine at zero
	Mode            ShadingMode // Lit or depth
}

// DefaultShadingConfig returns the reference lighting constants
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		Ambient:    0.05,
		Epsilon:    1e-4,
		MaxDepth:   3,
		Background: core.Black,
	}
}

// RayCounts tallies the work done by one shader
type RayCounts struct {
	ShadeCalls     int64
	PrimaryRays    int64
	ShadowRays     int64
	ReflectionRays int64
}

// Add returns the element-wise sum of two tallies
func (c RayCounts) Add(other RayCounts) RayCounts {
	return RayCounts{
		ShadeCalls:     c.ShadeCalls + other.ShadeCalls,
		PrimaryRays:    c.PrimaryRays + other.PrimaryRays,
		ShadowRays:     c.ShadowRays + other.ShadowRays,
		ReflectionRays: c.ReflectionRays + other.ReflectionRays,
	}
}

// Shader evaluates the colour seen along a ray. A Shader keeps its own ray
// counts and must only be used by one goroutine.
type Shader struct {
	scene  Scene
	config ShadingConfig
	counts RayCounts
}

// NewShader creates a shader for the scene
func NewShader(scene Scene, config ShadingConfig) *Shader {
	return &Shader{scene: scene, config: config}
}

// Counts returns the work done so far
func (s *Shader) Counts() RayCounts {
	return s.counts
}

// ShadePrimary shades a camera ray
func (s *Shader) ShadePrimary(ray core.Ray) core.Color {
	s.counts.PrimaryRays++
	if s.config.Mode == ShadeDepth {
		return s.shadeDepth(ray)
	}
	return s.Shade(ray, 0)
}

// Shade returns the unclamped colour along the ray at the given reflection depth
func (s *Shader) Shade(ray core.Ray, depth int) core.Color {
	s.counts.ShadeCalls++

	hit, ok := s.scene.CastRay(ray)
	if !ok {
		return s.config.Background
	}

	mat := hit.Material
	base := mat.Texture().Evaluate(hit.UV)
	color := base.Multiply(s.config.Ambient)

	for _, light := range s.scene.GetLights() {
		color = color.Add(s.direct(hit, base, light))
	}

	if depth < s.config.MaxDepth && mat.Reflectivity() != 0 {
		color = color.Add(s.reflect(ray, hit, depth).Multiply(mat.Reflectivity()))
	}

	return color
}

// direct is the diffuse contribution of one light, zero when shadowed.
// Unless ClampBackfacing is set, a light behind the surface subtracts.
func (s *Shader) direct(hit *geometry.Hit, base core.Color, light lights.PointLight) core.Color {
	toLight, dist2 := light.Toward(hit.Position)

	s.counts.ShadowRays++
	shadow := core.NewUnitRay(hit.Position.Add(toLight.Mul(s.config.Epsilon)), toLight)
	if s.scene.Occluded(shadow, dist2) {
		return core.Black
	}

	cos := toLight.Dot(hit.Normal)
	if s.config.ClampBackfacing && cos < 0 {
		cos = 0
	}
	return base.MultiplyColor(light.Color).Multiply(cos * hit.Material.Diffuse())
}

// reflect shades the mirror direction of the incoming ray
func (s *Shader) reflect(ray core.Ray, hit *geometry.Hit, depth int) core.Color {
	v := ray.Origin.Sub(hit.Position)
	r := hit.Normal.Mul(2 * hit.Normal.Dot(v)).Sub(v).Normalize()
	if r == (core.Vec3{}) {
		// Hit at the ray origin, no direction to follow
		return core.Black
	}

	s.counts.ReflectionRays++
	reflected := core.NewUnitRay(hit.Position.Add(r.Mul(s.config.Epsilon)), r)
	return s.Shade(reflected, depth+1)
}

func (s *Shader) shadeDepth(ray core.Ray) core.Color {
	s.counts.ShadeCalls++
	hit, ok := s.scene.CastRay(ray)
	if !ok {
		return core.Black
	}
	level := max(0, min(255, 255-hit.Distance*depthFalloff))
	return core.Gray(float64(uint8(level)) / 255)
}
