package geometry

import (
	"github.com/chewxy/math32"

	"github.com/raymini/go-sphere-tracer/pkg/math"
)

// Sphere represents a sphere with a scalar reflectance. The same type
// doubles as a point light, in which case Color holds the light
// intensity and Radius is conventionally zero.
type Sphere struct {
	Center math.Vec3
	Radius float32
	Color  float32
}

// NewSphere creates a new sphere
func NewSphere(center math.Vec3, radius, color float32) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect tests the ray against the sphere using the geometric
// construction and returns the hit distance along the ray. The ray
// direction is assumed to be unit length. The second return value is
// false when the ray misses.
//
// Rays whose direction points away from the sphere center (the center
// projects behind the origin) are rejected outright, even when the far
// root would be positive. This keeps points on a surface from shadowing
// themselves against lights on their lit side.
func (s Sphere) Intersect(ray math.Ray) (float32, bool) {
	l := s.Center.Subtract(ray.Origin)
	tCa := l.Dot(ray.Direction)
	if tCa < 0 {
		return 0, false
	}

	d2 := l.Dot(l) - tCa*tCa
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	tHc := math32.Sqrt(r2 - d2)
	t0 := tCa - tHc
	t1 := tCa + tHc
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// The near root is behind the origin when the origin sits inside
	// the sphere; fall back to the far root.
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}

	return t0, true
}
