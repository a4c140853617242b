// Package sink turns per-pixel scalar colors into formatted output.
// Sinks are the only place where colors get clamped or quantized; the
// trace pipeline hands them raw values.
package sink

// PixelFunc produces the scalar color for pixel (x, y)
type PixelFunc func(x, y int) float32

// Sink writes a width×height image by pulling one color per pixel
// from the given function. Implementations own their formatting and
// quantization; an error means the output could not be written and
// the render pass should abort.
type Sink interface {
	Write(width, height int, pixel PixelFunc) error
}
