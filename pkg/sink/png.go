package sink

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chewxy/math32"
)

// PNG writes the image as an 8-bit grayscale PNG. Unlike the pixmap
// sink it clamps to [0, 255] instead of wrapping; the PNG output is
// for viewing, not bug-compatibility.
type PNG struct {
	w io.Writer
}

// NewPNG creates a PNG sink writing to w
func NewPNG(w io.Writer) *PNG {
	return &PNG{w: w}
}

// Write encodes the pixel grid as a grayscale PNG
func (p *PNG) Write(width, height int, pixel PixelFunc) error {
	img := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := math32.Floor(pixel(x, y) * 255)
			if !(v > 0) { // negatives and NaN clamp to black
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}

	return png.Encode(p.w, img)
}
