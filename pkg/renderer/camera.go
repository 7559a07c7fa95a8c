package renderer

import (
	"github.com/df07/glimmer/pkg/core"
)

// Camera is a pinhole at the world origin looking down +z. Image x grows
// along +x and image y along +y, and the shorter image side spans one unit
// at z = 1.
type Camera struct {
	origin  core.Vec3
	halfW   float64
	halfH   float64
	invSize float64
}

// NewCamera creates a camera for an image of the given size
func NewCamera(width, height int) *Camera {
	return &Camera{
		origin:  core.NewVec3(0, 0, 0),
		halfW:   float64(width) * 0.5,
		halfH:   float64(height) * 0.5,
		invSize: 1 / float64(min(width, height)),
	}
}

// GetRay generates the primary ray through image position (px, py), where
// integer values are pixel corners
func (c *Camera) GetRay(px, py float64) core.Ray {
	xt := (px - c.halfW) * c.invSize
	yt := (py - c.halfH) * c.invSize
	return core.NewUnitRay(c.origin, core.NewVec3(xt, yt, 1).Normalize())
}
