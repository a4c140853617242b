package scene

import (
	"github.com/raymini/go-sphere-tracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering: the occluding
// surfaces and the point lights. Both slices are ordered: when two
// objects are intersected at exactly the same distance, the one earlier
// in Objects wins. A Scene is built once and is read-only for the
// duration of a render pass, which is what makes per-pixel tracing
// safe to run in parallel.
type Scene struct {
	Objects []geometry.Sphere // Visible surfaces and occluders
	Lights  []geometry.Sphere // Point lights; Color is the intensity
}

// NewScene creates a scene from materialized object and light lists.
// The slices are used as-is, not copied; callers must not mutate them
// while a render pass is running.
func NewScene(objects, lights []geometry.Sphere) *Scene {
	return &Scene{
		Objects: objects,
		Lights:  lights,
	}
}
