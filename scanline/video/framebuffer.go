package video

import "github.com/valerio/go-scanline/scanline/display"

// Framebuffer is a caller-owned 32-bit ARGB target. Stride is the distance
// between rows in bytes and must be a multiple of the pixel size.
type Framebuffer struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
}

// NewFramebuffer allocates a tightly packed framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
		Stride: width * display.BytesPerPixel,
	}
}

// Line returns the pixels of row y.
func (fb *Framebuffer) Line(y int) []uint32 {
	offset := y * fb.Stride / display.BytesPerPixel
	return fb.Pix[offset : offset+fb.Width]
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Line(y)[x]
}

// Clear zeroes every row.
func (fb *Framebuffer) Clear() {
	for y := 0; y < fb.Height; y++ {
		clear(fb.Line(y))
	}
}

func (fb *Framebuffer) valid() bool {
	if fb.Width < 1 || fb.Height < 1 || fb.Stride%display.BytesPerPixel != 0 {
		return false
	}
	pitch := fb.Stride / display.BytesPerPixel
	return pitch >= fb.Width && len(fb.Pix) >= (fb.Height-1)*pitch+fb.Width
}
