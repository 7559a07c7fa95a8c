package material

import (
	"fmt"
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/fogleman/fauxgl"
)

// ImagePattern loads a PNG or JPEG and samples it with nearest-neighbour
// lookup. UVs wrap; V=0 is the bottom row of the image.
func ImagePattern(path string) (Pattern, error) {
	tex, err := fauxgl.LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image texture %s: %w", path, err)
	}
	return SamplerPattern(tex), nil
}

// Sampler is anything that can be looked up by uv, such as a fauxgl texture
type Sampler interface {
	Sample(u, v float64) fauxgl.Color
}

// SamplerPattern adapts a Sampler to a Pattern
func SamplerPattern(s Sampler) Pattern {
	return func(uv core.Vec2) core.Color {
		if math.IsNaN(uv.U) || math.IsNaN(uv.V) || math.IsInf(uv.U, 0) || math.IsInf(uv.V, 0) {
			return core.Black
		}
		c := s.Sample(uv.U, uv.V)
		return core.NewColor(c.R, c.G, c.B)
	}
}
