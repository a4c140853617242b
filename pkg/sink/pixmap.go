package sink

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chewxy/math32"
)

// Pixmap writes the image as a plain-text PGM (P2) grayscale pixel
// map: a "P2" magic line, a "<width> <height> 255" line, then one line
// of integers per pixel row.
type Pixmap struct {
	w io.Writer
}

// NewPixmap creates a pixmap sink writing to w
func NewPixmap(w io.Writer) *Pixmap {
	return &Pixmap{w: w}
}

// Write emits the P2 header followed by width*height gray values
func (p *Pixmap) Write(width, height int, pixel PixelFunc) error {
	out := bufio.NewWriter(p.w)

	if _, err := fmt.Fprintf(out, "P2\n%d %d 255\n", width, height); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > 0 {
				if err := out.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "%d", grayValue(pixel(x, y))); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}

	return out.Flush()
}

// grayValue quantizes a color as floor(color*255) truncated to 8 bits.
// Overbright colors wrap rather than clamp: 1.2 comes out as 50, not
// 255. That truncation is part of the pinned output format.
func grayValue(color float32) uint8 {
	v := math32.Floor(color * 255)
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	return uint8(int64(v))
}
