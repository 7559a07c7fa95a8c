package renderer

import (
	"image"
	"image/color"

	"github.com/df07/glimmer/pkg/core"
)

// Frame is a packed RGB image, three bytes per pixel, rows top to bottom
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// stride is the number of bytes in one row
func (f *Frame) stride() int {
	return f.Width * 3
}

// rows returns the bytes of rows [y0, y1)
func (f *Frame) rows(y0, y1 int) []byte {
	return f.Pix[y0*f.stride() : y1*f.stride()]
}

// At returns the RGB bytes of pixel (x, y)
func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := y*f.stride() + x*3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// putPixel writes a colour clamped to bytes at column x of a row slice
func putPixel(row []byte, x int, c core.Color) {
	r, g, b := c.ToRGB8()
	row[x*3] = r
	row[x*3+1] = g
	row[x*3+2] = b
}

// RGBA converts the frame to an opaque image for encoders
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
