package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	PrimaryRays int           // Number of primary rays cast (one per pixel)
	Workers     int           // Number of workers used
	Elapsed     time.Duration // Wall-clock render time
}
