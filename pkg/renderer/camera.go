package renderer

import (
	"github.com/raymini/go-sphere-tracer/pkg/math"
)

// Camera generates one primary ray per pixel of a width×height grid.
// The model is fixed: the eye sits at (0, 1, 5) and pixel (x, y) maps
// to the direction (x - width/2, height/2 - y, -height), normalized.
// This exact mapping is a compatibility contract: changing it changes
// every rendered image.
type Camera struct {
	origin math.Vec3
	width  int
	height int
}

// NewCamera creates a camera for the given pixel grid
func NewCamera(width, height int) *Camera {
	return &Camera{
		origin: math.NewVec3(0, 1, 5),
		width:  width,
		height: height,
	}
}

// GetRay generates the primary ray for pixel (x, y). Pixel (0, 0) is
// the top-left corner; y grows downward.
func (c *Camera) GetRay(x, y int) math.Ray {
	direction := math.NewVec3(
		float32(x)-float32(c.width)/2,
		float32(c.height)/2-float32(y),
		-float32(c.height),
	).Normalize()

	return math.NewRay(c.origin, direction)
}

// Origin returns the camera position
func (c *Camera) Origin() math.Vec3 {
	return c.origin
}
