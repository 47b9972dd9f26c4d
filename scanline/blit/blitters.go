package blit

import "github.com/valerio/go-scanline/scanline/math2d"

// Blitter copies len(dst) pixels from an indexed source into a 32-bit
// destination run.
//
// Without scaling, the n-th pixel reads src[pos+n*step]; step is 1, -1 for
// horizontal flips, or the row pitch for transposed (rotated) reads.
// With scaling, step is a 16.16 increment and the n-th pixel reads
// src[pos+FixedToInt(frac+n*step)].
//
// palette maps indices to ARGB colors and must hold 256 entries. blend is
// nil when blending is disabled.
type Blitter func(src []uint8, pos, step, frac int, palette []uint32, dst []uint32, blend *Table)

// IndexBlitter is the 8-bit to 8-bit counterpart of Blitter, used to
// render into a mosaic row before block quantization.
type IndexBlitter func(src []uint8, pos, step, frac int, dst []uint8)

// blitters is indexed by key<<2 | scaling<<1 | blend.
var blitters = [8]Blitter{
	blitFast,
	blitFastBlend,
	blitFastScaling,
	blitFastScalingBlend,
	blitKey,
	blitKeyBlend,
	blitKeyScaling,
	blitKeyScalingBlend,
}

// indexBlitters is indexed by key<<1 | scaling.
var indexBlitters = [4]IndexBlitter{
	blitIndexFast,
	blitIndexFastScaling,
	blitIndexKey,
	blitIndexKeyScaling,
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Select returns the routine matching the given options. key enables
// color-key transparency (index 0 is skipped).
func Select(key, scaling, blend bool) Blitter {
	return blitters[flag(key)<<2|flag(scaling)<<1|flag(blend)]
}

// SelectIndexed returns the 8-bit routine matching the given options.
func SelectIndexed(key, scaling bool) IndexBlitter {
	return indexBlitters[flag(key)<<1|flag(scaling)]
}

func blitFast(src []uint8, pos, step, _ int, palette []uint32, dst []uint32, _ *Table) {
	for i := range dst {
		dst[i] = palette[src[pos]]
		pos += step
	}
}

func blitFastBlend(src []uint8, pos, step, _ int, palette []uint32, dst []uint32, blend *Table) {
	for i := range dst {
		dst[i] = blend.Pixel(palette[src[pos]], dst[i])
		pos += step
	}
}

func blitFastScaling(src []uint8, pos, step, frac int, palette []uint32, dst []uint32, _ *Table) {
	for i := range dst {
		dst[i] = palette[src[pos+math2d.FixedToInt(frac)]]
		frac += step
	}
}

func blitFastScalingBlend(src []uint8, pos, step, frac int, palette []uint32, dst []uint32, blend *Table) {
	for i := range dst {
		dst[i] = blend.Pixel(palette[src[pos+math2d.FixedToInt(frac)]], dst[i])
		frac += step
	}
}

func blitKey(src []uint8, pos, step, _ int, palette []uint32, dst []uint32, _ *Table) {
	for i := range dst {
		if idx := src[pos]; idx != 0 {
			dst[i] = palette[idx]
		}
		pos += step
	}
}

func blitKeyBlend(src []uint8, pos, step, _ int, palette []uint32, dst []uint32, blend *Table) {
	for i := range dst {
		if idx := src[pos]; idx != 0 {
			dst[i] = blend.Pixel(palette[idx], dst[i])
		}
		pos += step
	}
}

func blitKeyScaling(src []uint8, pos, step, frac int, palette []uint32, dst []uint32, _ *Table) {
	for i := range dst {
		if idx := src[pos+math2d.FixedToInt(frac)]; idx != 0 {
			dst[i] = palette[idx]
		}
		frac += step
	}
}

func blitKeyScalingBlend(src []uint8, pos, step, frac int, palette []uint32, dst []uint32, blend *Table) {
	for i := range dst {
		if idx := src[pos+math2d.FixedToInt(frac)]; idx != 0 {
			dst[i] = blend.Pixel(palette[idx], dst[i])
		}
		frac += step
	}
}

func blitIndexFast(src []uint8, pos, step, _ int, dst []uint8) {
	for i := range dst {
		dst[i] = src[pos]
		pos += step
	}
}

func blitIndexFastScaling(src []uint8, pos, step, frac int, dst []uint8) {
	for i := range dst {
		dst[i] = src[pos+math2d.FixedToInt(frac)]
		frac += step
	}
}

func blitIndexKey(src []uint8, pos, step, _ int, dst []uint8) {
	for i := range dst {
		if idx := src[pos]; idx != 0 {
			dst[i] = idx
		}
		pos += step
	}
}

func blitIndexKeyScaling(src []uint8, pos, step, frac int, dst []uint8) {
	for i := range dst {
		if idx := src[pos+math2d.FixedToInt(frac)]; idx != 0 {
			dst[i] = idx
		}
		frac += step
	}
}

// BlitColor fills dst with a solid color, blended when blend is set.
func BlitColor(dst []uint32, color uint32, blend *Table) {
	if blend == nil {
		for i := range dst {
			dst[i] = color
		}
		return
	}
	for i := range dst {
		dst[i] = blend.Pixel(color, dst[i])
	}
}

// Blit32 copies direct-color pixels, skipping zero (empty) source pixels.
func Blit32(src, dst []uint32, blend *Table) {
	n := min(len(src), len(dst))
	for i := 0; i < n; i++ {
		c := src[i]
		if c == 0 {
			continue
		}
		if blend != nil {
			c = blend.Pixel(c, dst[i])
		}
		dst[i] = c
	}
}

// BlitMosaic expands an index row into blocks of size pixels, each block
// taking the color of its first sample. Blocks whose sample is index 0
// are left untouched.
func BlitMosaic(src []uint8, palette []uint32, dst []uint32, size int, blend *Table) {
	if size < 1 {
		size = 1
	}
	for x := 0; x < len(dst); x += size {
		end := min(x+size, len(dst))
		idx := src[x]
		if idx == 0 {
			continue
		}
		BlitColor(dst[x:end], palette[idx], blend)
	}
}
