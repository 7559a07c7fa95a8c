package material

import (
	"math"
	"sort"

	"github.com/df07/glimmer/pkg/core"
)

const (
	noiseLattice    = 16.0
	noiseMultiplier = 2364275237
)

// XORPattern scales uv to a byte lattice and XORs the two coordinates
func XORPattern(uv core.Vec2) core.Color {
	x := saturateUint8(uv.U * 255)
	y := saturateUint8(uv.V * 255)
	return core.Gray(float64(x^y) / 255)
}

// NoisePattern is a stateless per-cell hash: a 16x16 lattice per unit of uv,
// seeded from the cell coordinates and scrambled with a 32-bit xorshift.
// Every step wraps at 32 bits so results are bit-reproducible.
func NoisePattern(uv core.Vec2) core.Color {
	x := saturateUint32(uv.U * noiseLattice)
	y := saturateUint32(uv.V * noiseLattice)

	seed := x*3 ^ y*7
	seed *= noiseMultiplier
	seed ^= seed << 13
	seed ^= seed >> 17
	seed ^= seed << 5

	return core.Gray(float64(uint8(seed)) / 255)
}

// CheckerPattern alternates two colours on a square grid of the given
// number of cells per unit of uv
func CheckerPattern(cellsPerUnit float64, a, b core.Color) Pattern {
	return func(uv core.Vec2) core.Color {
		cx := math.Floor(uv.U * cellsPerUnit)
		cy := math.Floor(uv.V * cellsPerUnit)
		if math.Mod(math.Abs(cx+cy), 2) == 0 {
			return a
		}
		return b
	}
}

// UVDebugPattern maps u to red and v to green
func UVDebugPattern(uv core.Vec2) core.Color {
	return core.NewColor(uv.U, uv.V, 0)
}

var namedPatterns = map[string]Pattern{
	"xor":     XORPattern,
	"noise":   NoisePattern,
	"uvdebug": UVDebugPattern,
}

// LookupPattern returns a built-in pattern by name
func LookupPattern(name string) (Pattern, bool) {
	p, ok := namedPatterns[name]
	return p, ok
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(namedPatterns))
	for name := range namedPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// saturateUint8 converts like a saturating float-to-int cast: NaN and
// negatives become 0, values past the range become 255.
func saturateUint8(f float64) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(f)
}

func saturateUint32(f float64) uint32 {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}
