package renderer

import (
	"time"

	"github.com/raymini/go-sphere-tracer/pkg/tracer"
)

// Renderer fills a frame by casting one primary ray per pixel through
// a fixed camera and shading it with the tracer. Every pixel is an
// independent computation, so scanlines are farmed out to a worker
// pool; the result is identical regardless of worker count.
type Renderer struct {
	camera     *Camera
	tracer     *tracer.Tracer
	width      int
	height     int
	numWorkers int
}

// NewRenderer creates a renderer for the given tracer and pixel grid.
// Workers default to one per CPU.
func NewRenderer(trc *tracer.Tracer, width, height int) *Renderer {
	return &Renderer{
		camera: NewCamera(width, height),
		tracer: trc,
		width:  width,
		height: height,
	}
}

// SetNumWorkers overrides the worker count; n <= 0 restores the
// one-per-CPU default.
func (r *Renderer) SetNumWorkers(n int) {
	r.numWorkers = n
}

// Render traces the full frame and returns it with pass statistics
func (r *Renderer) Render() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(r.width, r.height)

	pool := NewWorkerPool(r.camera, r.tracer, r.height, r.numWorkers)
	for y := 0; y < r.height; y++ {
		pool.SubmitTask(RowTask{Row: y, Frame: frame})
	}

	rays := 0
	for i := 0; i < r.height; i++ {
		result := pool.GetResult()
		rays += result.Rays
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels: r.width * r.height,
		PrimaryRays: rays,
		Workers:     pool.GetNumWorkers(),
		Elapsed:     time.Since(start),
	}
	return frame, stats
}
