package scene

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/lights"
	"github.com/df07/glimmer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once and
// is read-only while a render is in progress.
type Scene struct {
	Name           string
	SamplingConfig SamplingConfig

	spheres []*geometry.Sphere
	planes  []*geometry.Plane
	lights  []lights.PointLight
}

// SamplingConfig contains the scene's preferred render settings
type SamplingConfig struct {
	Width     int  // Image width
	Height    int  // Image height
	MaxDepth  int  // Maximum reflection depth
	Antialias bool // Use the 2x2 kernel instead of a single sample
}

// DefaultSamplingConfig returns the settings used when a scene does not set its own
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:     800,
		Height:    450,
		MaxDepth:  3,
		Antialias: true,
	}
}

// NewScene creates an empty scene
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat *material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return fmt.Errorf("sphere %d: %w", len(s.spheres), err)
	}
	s.spheres = append(s.spheres, sphere)
	return nil
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, mat *material.Material) error {
	plane, err := geometry.NewPlane(point, normal, mat)
	if err != nil {
		return fmt.Errorf("plane %d: %w", len(s.planes), err)
	}
	s.planes = append(s.planes, plane)
	return nil
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color) error {
	light, err := lights.NewPointLight(position, color)
	if err != nil {
		return fmt.Errorf("light %d: %w", len(s.lights), err)
	}
	s.lights = append(s.lights, light)
	return nil
}

type intersector interface {
	Intersect(ray core.Ray) (geometry.Candidate, bool)
}

// nearest scans prims and keeps the first candidate with the smallest
// squared distance
func nearest[P intersector](prims []P, ray core.Ray) (geometry.Candidate, bool) {
	var best geometry.Candidate
	found := false
	for _, p := range prims {
		c, ok := p.Intersect(ray)
		if !ok {
			continue
		}
		if !found || c.Dist2 < best.Dist2 {
			best = c
			found = true
		}
	}
	return best, found
}

// CastRay returns the nearest intersection along the ray. When a plane and a
// sphere are equally near, the plane is returned.
func (s *Scene) CastRay(ray core.Ray) (*geometry.Hit, bool) {
	sphereHit, sphereOK := nearest(s.spheres, ray)
	planeHit, planeOK := nearest(s.planes, ray)

	switch {
	case planeOK && (!sphereOK || planeHit.Dist2 <= sphereHit.Dist2):
		return planeHit.Resolve(), true
	case sphereOK:
		return sphereHit.Resolve(), true
	default:
		return nil, false
	}
}

// Occluded reports whether the nearest intersection along the ray has a
// squared distance below maxDist2. It agrees with CastRay but never builds
// a Hit.
func (s *Scene) Occluded(ray core.Ray, maxDist2 float64) bool {
	for _, sp := range s.spheres {
		if c, ok := sp.Intersect(ray); ok && c.Dist2 < maxDist2 {
			return true
		}
	}
	for _, p := range s.planes {
		if c, ok := p.Intersect(ray); ok && c.Dist2 < maxDist2 {
			return true
		}
	}
	return false
}

// GetLights returns the scene's point lights
func (s *Scene) GetLights() []lights.PointLight {
	return s.lights
}

// GetSpheres returns the scene's spheres
func (s *Scene) GetSpheres() []*geometry.Sphere {
	return s.spheres
}

// GetPlanes returns the scene's planes
func (s *Scene) GetPlanes() []*geometry.Plane {
	return s.planes
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.spheres) + len(s.planes)
}

// mustSphere, mustPlane and mustLight build the literal built-in scenes,
// where a construction error is a programming mistake
func (s *Scene) mustSphere(center core.Vec3, radius float64, mat *material.Material) {
	if err := s.AddSphere(center, radius, mat); err != nil {
		panic(fmt.Sprintf("scene %s: %v", s.Name, err))
	}
}

func (s *Scene) mustPlane(point, normal core.Vec3, mat *material.Material) {
	if err := s.AddPlane(point, normal, mat); err != nil {
		panic(fmt.Sprintf("scene %s: %v", s.Name, err))
	}
}

func (s *Scene) mustLight(position core.Vec3, color core.Color) {
	if err := s.AddLight(position, color); err != nil {
		panic(fmt.Sprintf("scene %s: %v", s.Name, err))
	}
}
