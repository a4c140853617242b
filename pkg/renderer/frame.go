package renderer

// Frame is a width×height grid of scalar colors produced by a render
// pass. Values are stored raw, unclamped and unquantized; turning
// them into characters or bytes is the sinks' job.
type Frame struct {
	Width  int
	Height int
	pix    []float32
}

// NewFrame creates a zeroed frame of the given dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		pix:    make([]float32, width*height),
	}
}

// At returns the color stored for pixel (x, y)
func (f *Frame) At(x, y int) float32 {
	return f.pix[y*f.Width+x]
}

// set stores the color for pixel (x, y)
func (f *Frame) set(x, y int, color float32) {
	f.pix[y*f.Width+x] = color
}
