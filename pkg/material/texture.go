package material

import (
	"github.com/df07/glimmer/pkg/core"
)

// Pattern is a deterministic function from surface coordinates to colour.
// Patterns must not hold mutable state; they are evaluated concurrently.
type Pattern func(uv core.Vec2) core.Color

// TextureKind tags the variant held by a Texture
type TextureKind int

const (
	SolidTexture TextureKind = iota
	ProceduralTexture
)

func (k TextureKind) String() string {
	switch k {
	case SolidTexture:
		return "solid"
	case ProceduralTexture:
		return "procedural"
	default:
		return "unknown"
	}
}

// Texture is either a solid colour or a procedural pattern over uv
type Texture struct {
	kind    TextureKind
	color   core.Color
	pattern Pattern
	name    string
}

// Solid creates a texture that ignores uv and returns a fixed colour
func Solid(color core.Color) Texture {
	return Texture{kind: SolidTexture, color: color, name: "solid"}
}

// Procedural creates a texture that evaluates pattern at the hit's uv
func Procedural(name string, pattern Pattern) Texture {
	return Texture{kind: ProceduralTexture, pattern: pattern, name: name}
}

// Kind returns the texture variant
func (t Texture) Kind() TextureKind {
	return t.kind
}

// Name returns the pattern name, or "solid"
func (t Texture) Name() string {
	return t.name
}

// Color returns the fixed colour of a solid texture
func (t Texture) Color() core.Color {
	return t.color
}

// Evaluate returns the surface colour at uv
func (t Texture) Evaluate(uv core.Vec2) core.Color {
	if t.kind == ProceduralTexture {
		return t.pattern(uv)
	}
	return t.color
}

func (t Texture) valid() bool {
	switch t.kind {
	case SolidTexture:
		return true
	case ProceduralTexture:
		return t.pattern != nil
	default:
		return false
	}
}
