package video

import (
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/math2d"
)

// tiledPixel samples the tilemap at layer-space (x, y), which must be
// inside the layer.
func (l *Layer) tiledPixel(x, y int) uint8 {
	ts := l.tileset
	tw, th := ts.Width(), ts.Height()
	tile := l.tilemap.Tile(y/th, x/tw)
	if tile.Empty() {
		return 0
	}
	entry := ts.Resolve(tile.Index)
	if entry == 0 {
		return 0
	}

	u, v := x%tw, y%th
	if tile.Flags.Has(gfx.FlagFlipX) {
		u = tw - 1 - u
	}
	if tile.Flags.Has(gfx.FlagFlipY) {
		v = th - 1 - v
	}
	if tile.Flags.Has(gfx.FlagRotate) && tw == th {
		u, v = v, u
	}
	return ts.Pixels()[ts.Offset(entry, u, v)]
}

func (l *Layer) bitmapPixel(x, y int) uint8 {
	return l.bitmap.Pixels()[y*l.bitmap.Pitch()+x]
}

func drawTiledAffine(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	return e.drawAffine(l, nscan, x1, x2, l.tiledPixel)
}

func drawBitmapAffine(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	return e.drawAffine(l, nscan, x1, x2, l.bitmapPixel)
}

func drawTiledPixelMap(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	return e.drawPixelMap(l, nscan, x1, x2, l.tiledPixel)
}

func drawBitmapPixelMap(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	return e.drawPixelMap(l, nscan, x1, x2, l.bitmapPixel)
}

// drawAffine transforms the scanline endpoints into source space and
// walks the segment between them in 16.16 steps, gathering indices into
// the scratch row before a single keyed blit.
func (e *Engine) drawAffine(l *Layer, nscan, x1, x2 int, pixel func(x, y int) uint8) bool {
	p1 := math2d.Point2D{X: float32(l.hstart), Y: float32(l.vstart + nscan)}
	p2 := math2d.Point2D{X: float32(l.hstart + e.width), Y: p1.Y}
	p1.Multiply(l.transform)
	p2.Multiply(l.transform)

	w := float32(e.width)
	dx := math2d.FloatToFixed((p2.X - p1.X) / w)
	dy := math2d.FloatToFixed((p2.Y - p1.Y) / w)
	fx := math2d.FloatToFixed(p1.X) + x1*dx
	fy := math2d.FloatToFixed(p1.Y) + x1*dy

	row := e.indexRow
	for x := x1; x < x2; x++ {
		row[x] = pixel(mod(math2d.FixedToInt(fx), l.width), mod(math2d.FixedToInt(fy), l.height))
		fx += dx
		fy += dy
	}
	return e.emit(l, l.palette.Colors(), row, x1, 1, 0, x1, x2-x1, true, false)
}

// drawPixelMap samples each pixel at the layer position displaced by the
// pixel's map entry.
func (e *Engine) drawPixelMap(l *Layer, nscan, x1, x2 int, pixel func(x, y int) uint8) bool {
	row := e.indexRow
	base := nscan * e.width
	for x := x1; x < x2; x++ {
		m := l.pixelMap[base+x]
		row[x] = pixel(mod(l.hstart+int(m.Dx), l.width), mod(l.vstart+int(m.Dy), l.height))
	}
	return e.emit(l, l.palette.Colors(), row, x1, 1, 0, x1, x2-x1, true, false)
}
