package gfx

import "fmt"

// Bitmap is a single 8-bit indexed image.
type Bitmap struct {
	width, height int
	pixels        []uint8
	palette       *Palette
}

// NewBitmap allocates a zeroed (fully transparent) bitmap.
func NewBitmap(w, h int, palette *Palette) (*Bitmap, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrSize, w, h)
	}
	return &Bitmap{
		width:   w,
		height:  h,
		pixels:  make([]uint8, w*h),
		palette: palette,
	}, nil
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// Pitch returns the distance in bytes between consecutive rows.
func (b *Bitmap) Pitch() int { return b.width }

// Pixels exposes the row-major pixel storage.
func (b *Bitmap) Pixels() []uint8 { return b.pixels }

func (b *Bitmap) Palette() *Palette { return b.palette }

func (b *Bitmap) SetPalette(p *Palette) { b.palette = p }

// Line returns row y.
func (b *Bitmap) Line(y int) []uint8 {
	return b.pixels[y*b.width : (y+1)*b.width]
}

// At returns the index at (x, y), or 0 out of bounds.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pixels[y*b.width+x]
}

// Set writes the index at (x, y); writes out of bounds are dropped.
func (b *Bitmap) Set(x, y int, idx uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = idx
}

// Fill paints a rectangle clipped to the bitmap bounds.
func (b *Bitmap) Fill(x, y, w, h int, idx uint8) {
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+w, b.width), min(y+h, b.height)
	for row := y1; row < y2; row++ {
		line := b.Line(row)
		for col := x1; col < x2; col++ {
			line[col] = idx
		}
	}
}
