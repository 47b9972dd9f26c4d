package gfx

import (
	"fmt"

	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/display"
)

// MaxPaletteEntries is the size of the index space of 8-bit sources.
const MaxPaletteEntries = 256

// Palette maps 8-bit indices to opaque ARGB colors. Storage always spans
// the full index space so blitters can index it without bounds checks on
// the entry count; entries past Len read as transparent black.
type Palette struct {
	colors  [MaxPaletteEntries]uint32
	entries int
}

// NewPalette creates a palette with the given number of black entries.
func NewPalette(entries int) (*Palette, error) {
	if entries < 1 || entries > MaxPaletteEntries {
		return nil, fmt.Errorf("%w: palette entries %d", ErrSize, entries)
	}
	p := &Palette{entries: entries}
	for i := 0; i < entries; i++ {
		p.colors[i] = display.OpaqueAlpha
	}
	return p, nil
}

// Len returns the number of usable entries.
func (p *Palette) Len() int {
	return p.entries
}

// Colors exposes the full 256-entry lookup used by the blitters.
func (p *Palette) Colors() []uint32 {
	return p.colors[:]
}

// Color returns the packed color at index i, or 0 when out of range.
func (p *Palette) Color(i int) uint32 {
	if i < 0 || i >= p.entries {
		return 0
	}
	return p.colors[i]
}

// SetColor stores an opaque color at index i.
func (p *Palette) SetColor(i int, r, g, b uint8) error {
	if i < 0 || i >= p.entries {
		return fmt.Errorf("%w: palette entry %d of %d", ErrIndex, i, p.entries)
	}
	p.colors[i] = display.PackRGB(r, g, b)
	return nil
}

// Clone returns an independent copy of p.
func (p *Palette) Clone() *Palette {
	clone := *p
	return &clone
}

// MixPalettes writes into dst the interpolation between src1 and src2,
// where factor 0 yields src1 and 255 yields src2.
func MixPalettes(src1, src2, dst *Palette, factor uint8) error {
	if src1 == nil || src2 == nil || dst == nil {
		return ErrNilResource
	}

	mod := blit.Blend(blit.BlendMod)
	inv := 255 - factor
	count := min(max(src1.entries, src2.entries), dst.entries)
	for i := 0; i < count; i++ {
		r1, g1, b1 := display.UnpackRGB(src1.colors[i])
		r2, g2, b2 := display.UnpackRGB(src2.colors[i])
		dst.colors[i] = display.PackRGB(
			mod.At(r2, factor)+mod.At(r1, inv),
			mod.At(g2, factor)+mod.At(g1, inv),
			mod.At(b2, factor)+mod.At(b1, inv),
		)
	}
	return nil
}

// AddColor adds (r, g, b) to num entries starting at start, clamping at white.
func (p *Palette) AddColor(r, g, b uint8, start, num int) error {
	return p.edit(blit.BlendAdd, r, g, b, start, num)
}

// SubColor subtracts (r, g, b) from num entries starting at start, clamping at black.
func (p *Palette) SubColor(r, g, b uint8, start, num int) error {
	return p.edit(blit.BlendSub, r, g, b, start, num)
}

// ModColor modulates num entries starting at start by (r, g, b).
func (p *Palette) ModColor(r, g, b uint8, start, num int) error {
	return p.edit(blit.BlendMod, r, g, b, start, num)
}

func (p *Palette) edit(mode blit.BlendMode, r, g, b uint8, start, num int) error {
	if start < 0 || start >= p.entries {
		return fmt.Errorf("%w: palette entry %d of %d", ErrIndex, start, p.entries)
	}

	table := blit.Blend(mode)
	end := min(start+num, p.entries)
	for i := start; i < end; i++ {
		er, eg, eb := display.UnpackRGB(p.colors[i])
		p.colors[i] = display.PackRGB(table.At(r, er), table.At(g, eg), table.At(b, eb))
	}
	return nil
}
