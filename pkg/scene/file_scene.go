package scene

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/fauxgl"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/loaders"
	"github.com/df07/glimmer/pkg/material"
)

// ErrInvalidColor is returned for colour strings that are not #rgb or #rrggbb
var ErrInvalidColor = errors.New("invalid hex colour")

// NewFileScene loads a JSON scene file and builds the scene it describes
func NewFileScene(filename string) (*Scene, error) {
	sf, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := BuildFileScene(sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// BuildFileScene converts a parsed scene file into a Scene. Errors name the
// entry that failed.
func BuildFileScene(sf *loaders.SceneFile) (*Scene, error) {
	s := NewScene(sf.Name)
	if sf.Width > 0 {
		s.SamplingConfig.Width = sf.Width
	}
	if sf.Height > 0 {
		s.SamplingConfig.Height = sf.Height
	}

	materials := make(map[string]*material.Material, len(sf.Materials))
	lookup := func(name string) (*material.Material, error) {
		if m, ok := materials[name]; ok {
			return m, nil
		}
		spec, ok := sf.Materials[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		m, err := buildMaterial(sf, spec)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
		return m, nil
	}

	for i, spec := range sf.Spheres {
		mat, err := lookup(spec.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if err := s.AddSphere(vec(spec.Center), spec.Radius, mat); err != nil {
			return nil, err
		}
	}

	for i, spec := range sf.Planes {
		mat, err := lookup(spec.Material)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		if err := s.AddPlane(vec(spec.Point), vec(spec.Normal), mat); err != nil {
			return nil, err
		}
	}

	for i, spec := range sf.Lights {
		color, err := parseColor(spec.Color, core.Gray(1))
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if spec.Intensity != nil {
			if math.IsNaN(*spec.Intensity) || *spec.Intensity < 0 {
				return nil, fmt.Errorf("light %d: intensity %v must be non-negative", i, *spec.Intensity)
			}
			color = color.Multiply(*spec.Intensity)
		}
		if err := s.AddLight(vec(spec.Position), color); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func buildMaterial(sf *loaders.SceneFile, spec loaders.MaterialSpec) (*material.Material, error) {
	texture, err := buildTexture(sf, spec)
	if err != nil {
		return nil, err
	}
	return material.NewMaterial(texture, spec.Diffuse, spec.Reflectivity)
}

func buildTexture(sf *loaders.SceneFile, spec loaders.MaterialSpec) (material.Texture, error) {
	switch spec.Texture {
	case "", "solid":
		c, err := parseColor(spec.Color, core.Gray(1))
		if err != nil {
			return material.Texture{}, err
		}
		return material.Solid(c), nil

	case "checker":
		a, err := parseColor(spec.Color, core.Gray(0.9))
		if err != nil {
			return material.Texture{}, err
		}
		b, err := parseColor(spec.Color2, core.Gray(0.1))
		if err != nil {
			return material.Texture{}, err
		}
		scale := spec.Scale
		if scale == 0 {
			scale = 8
		}
		if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
			return material.Texture{}, fmt.Errorf("checker scale %v must be positive", scale)
		}
		return material.Procedural("checker", material.CheckerPattern(scale, a, b)), nil

	case "image":
		if spec.Image == "" {
			return material.Texture{}, fmt.Errorf("image texture needs an image path")
		}
		pattern, err := material.ImagePattern(sf.ResolvePath(spec.Image))
		if err != nil {
			return material.Texture{}, err
		}
		return material.Procedural("image", pattern), nil

	default:
		pattern, ok := material.LookupPattern(spec.Texture)
		if !ok {
			return material.Texture{}, fmt.Errorf("unknown texture %q (want solid, checker, image or one of %s)",
				spec.Texture, strings.Join(material.PatternNames(), ", "))
		}
		return material.Procedural(spec.Texture, pattern), nil
	}
}

// parseColor parses #rgb or #rrggbb, returning fallback for an empty string
func parseColor(s string, fallback core.Color) (core.Color, error) {
	if s == "" {
		return fallback, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return core.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return core.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	c := fauxgl.HexColor(hex)
	return core.NewColor(c.R, c.G, c.B), nil
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
