package sink

import (
	"bufio"
	"io"

	"github.com/chewxy/math32"
)

// Ramp is the character ramp used for terminal output, ordered from
// darkest to brightest.
const Ramp = " .:-=+*#%@$"

// Terminal renders the image as ASCII art: each pixel maps to a ramp
// character printed twice (terminal cells are roughly twice as tall as
// they are wide), one line per row.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a terminal sink writing to w
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Write renders the pixel grid as ramp characters
func (t *Terminal) Write(width, height int, pixel PixelFunc) error {
	out := bufio.NewWriter(t.w)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := RampChar(pixel(x, y))
			if err := out.WriteByte(ch); err != nil {
				return err
			}
			if err := out.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}

	return out.Flush()
}

// RampChar maps a color to its ramp character via
// clamp(floor(color*10), 0, 10). Out-of-range values, including the
// NaNs a degenerate trace can produce, clamp to the ramp bounds
// instead of indexing out of it.
func RampChar(color float32) byte {
	idx := math32.Floor(color * 10)
	if !(idx > 0) { // catches negatives and NaN
		return Ramp[0]
	}
	if idx > 10 {
		idx = 10
	}
	return Ramp[int(idx)]
}
