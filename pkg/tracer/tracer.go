package tracer

import (
	"github.com/chewxy/math32"

	"github.com/raymini/go-sphere-tracer/pkg/geometry"
	"github.com/raymini/go-sphere-tracer/pkg/math"
	"github.com/raymini/go-sphere-tracer/pkg/scene"
)

// Shading model constants
const (
	ambientFactor  = 0.1
	diffuseFactor  = 0.7
	specularFactor = 0.4
	shininess      = 70
)

// BackgroundMode selects what a ray that hits nothing evaluates to.
type BackgroundMode int

const (
	// BackgroundGradient shades misses with 1 - direction.Y, brighter
	// toward the horizon and darker looking up.
	BackgroundGradient BackgroundMode = iota
	// BackgroundFlat shades every miss with a single constant.
	BackgroundFlat
)

// Tracer computes the shaded color seen along a ray through a scene.
// Trace is a pure function of (scene, origin, direction), so a single
// Tracer is safe to share across goroutines as long as the scene is
// not mutated.
type Tracer struct {
	scene      *scene.Scene
	background BackgroundMode
	flatColor  float32
}

// NewTracer creates a tracer over the given scene using the gradient
// background.
func NewTracer(s *scene.Scene) *Tracer {
	return &Tracer{
		scene:      s,
		background: BackgroundGradient,
	}
}

// SetFlatBackground switches the tracer to a flat background of the
// given color.
func (t *Tracer) SetFlatBackground(color float32) {
	t.background = BackgroundFlat
	t.flatColor = color
}

// Trace casts a ray into the scene and returns the shaded color at the
// nearest hit, or the background color when nothing is hit. The result
// is unclamped and may exceed 1; clamping and quantization belong to
// the output sinks. Degenerate geometry surfaces as NaN in the result
// and is deliberately left to propagate.
func (t *Tracer) Trace(origin, direction math.Vec3) float32 {
	ray := math.NewRay(origin, direction)

	obj, dist, hit := t.nearestHit(ray)
	if !hit {
		return t.backgroundColor(direction)
	}

	point := ray.At(dist)
	normal := point.Subtract(obj.Center).Normalize()

	color := obj.Color * ambientFactor
	for _, light := range t.scene.Lights {
		lightDir := light.Center.Subtract(point).Normalize()
		if t.inShadow(point, lightDir) {
			continue
		}

		cos := max(float32(0), lightDir.Dot(normal))
		diffuse := cos * diffuseFactor
		specular := math32.Pow(cos, shininess) * specularFactor
		color += obj.Color*light.Color*diffuse + specular
	}

	return color
}

// nearestHit scans the scene objects in order and keeps the minimum hit
// distance. The strictly-less comparison means the first object at any
// given distance wins exact ties.
func (t *Tracer) nearestHit(ray math.Ray) (*geometry.Sphere, float32, bool) {
	var best float32 = math32.MaxFloat32
	bestIdx := -1

	for i := range t.scene.Objects {
		if dist, ok := t.scene.Objects[i].Intersect(ray); ok && dist < best {
			best = dist
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return nil, 0, false
	}
	return &t.scene.Objects[bestIdx], best, true
}

// inShadow reports whether anything in the scene blocks the path from
// the point toward the light. The test runs over every object; the
// shaded object is not excluded and the ray is not clipped at the
// light's distance, matching the shading model this renderer pins down.
// Occluders beyond the light therefore still cast shadows.
func (t *Tracer) inShadow(point, lightDir math.Vec3) bool {
	shadowRay := math.NewRay(point, lightDir)
	for i := range t.scene.Objects {
		if _, ok := t.scene.Objects[i].Intersect(shadowRay); ok {
			return true
		}
	}
	return false
}

// backgroundColor evaluates the configured background policy for a
// missed ray.
func (t *Tracer) backgroundColor(direction math.Vec3) float32 {
	if t.background == BackgroundFlat {
		return t.flatColor
	}
	return 1 - direction.Y
}
