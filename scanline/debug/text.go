package debug

import (
	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/video"
)

// shades maps luminance levels, darkest first, to block glyphs.
var shades = []rune{' ', '░', '▒', '▓', '█'}

// PixelToShade quantizes a pixel's luminance to an index into shades.
func PixelToShade(pixel uint32) int {
	r8, g8, b8 := display.UnpackRGB(pixel)
	r, g, b := uint32(r8), uint32(g8), uint32(b8)
	// integer Rec. 601 luma
	luma := (299*r + 587*g + 114*b) / 1000
	return int(luma) * len(shades) / 256
}

// halfBlock picks the glyph for two vertically stacked pixels.
func halfBlock(top, bottom int) rune {
	switch {
	case top == bottom:
		return shades[top]
	case top > bottom:
		return '▀'
	default:
		return '▄'
	}
}

// RenderHalfBlocks turns a framebuffer into text, two pixel rows per line.
func RenderHalfBlocks(fb *video.Framebuffer) []string {
	lines := make([]string, 0, (fb.Height+1)/2)
	for y := 0; y < fb.Height; y += 2 {
		top := fb.Line(y)
		var bottom []uint32
		if y+1 < fb.Height {
			bottom = fb.Line(y + 1)
		}

		line := make([]rune, fb.Width)
		for x := range line {
			ts := PixelToShade(top[x])
			bs := 0
			if bottom != nil {
				bs = PixelToShade(bottom[x])
			}
			line[x] = halfBlock(ts, bs)
		}
		lines = append(lines, string(line))
	}
	return lines
}
