package scene

import (
	"github.com/raymini/go-sphere-tracer/pkg/geometry"
	"github.com/raymini/go-sphere-tracer/pkg/math"
)

// NewReferenceScene creates the fixed 4-sphere / 3-light scene rendered
// by the CLI and pinned by the golden regression tests. The ground is a
// large sphere rather than a plane so the whole scene stays within the
// single primitive type.
func NewReferenceScene() *Scene {
	objects := []geometry.Sphere{
		geometry.NewSphere(math.NewVec3(0, -1000, 0), 1000, 0.6), // ground
		geometry.NewSphere(math.NewVec3(0, 1, -2), 1, 0.8),
		geometry.NewSphere(math.NewVec3(-2, 0.7, -1), 0.7, 0.5),
		geometry.NewSphere(math.NewVec3(2.2, 0.8, -2.5), 0.8, 0.9),
	}

	lights := []geometry.Sphere{
		geometry.NewSphere(math.NewVec3(-8, 10, 4), 0, 0.9),
		geometry.NewSphere(math.NewVec3(6, 8, 2), 0, 0.6),
		geometry.NewSphere(math.NewVec3(0, 20, 10), 0, 0.5),
	}

	return NewScene(objects, lights)
}
