package video

import (
	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/math2d"
)

// layerDrawFunc renders framebuffer columns [x1, x2) of scanline nscan
// for one layer. It reports whether any pixel went to the priority row.
type layerDrawFunc func(e *Engine, l *Layer, nscan, x1, x2 int) bool

// drawers is indexed by kind and mode. Object layers only draw in the
// normal mode.
var drawers = [numLayerKinds][numLayerModes]layerDrawFunc{
	LayerTiled:   {drawTiled, drawTiledScaling, drawTiledAffine, drawTiledPixelMap},
	LayerBitmap:  {drawBitmap, drawBitmapScaling, drawBitmapAffine, drawBitmapPixelMap},
	LayerObjects: {drawObjects},
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// emit sends one run of width source pixels to framebuffer column x.
// Runs go to the mosaic row when mosaic is on, to the priority row when
// priority is set, and to the scanline otherwise.
func (e *Engine) emit(l *Layer, palette []uint32, src []uint8, pos, step, frac, x, width int, key, priority bool) bool {
	if width <= 0 {
		return false
	}
	k := flag(key)
	if l.mosaic.h != 0 {
		l.indexBlitters[k](src, pos, step, frac, l.mosaic.row[x:x+width])
		return false
	}
	if priority || l.priority {
		l.priorityBlitters[k](src, pos, step, frac, palette, e.priorityRow[x:x+width], nil)
		return true
	}
	l.blitters[k](src, pos, step, frac, palette, e.scan[x:x+width], l.blend)
	return false
}

// drawLayer renders the visible spans of layer l on scanline nscan,
// including mosaic expansion and the window overlay.
func (e *Engine) drawLayer(l *Layer, nscan int) bool {
	dst, blend := e.scan, l.blend
	if l.priority {
		dst, blend = e.priorityRow, nil
	}

	wrote := false
	spans := e.layerSpans(l, nscan)
	for _, s := range spans {
		if l.mosaic.h == 0 {
			if l.draw(e, l, nscan, s.x1, s.x2) {
				wrote = true
			}
			continue
		}
		if nscan%l.mosaic.h == 0 {
			clear(l.mosaic.row[s.x1:s.x2])
			l.draw(e, l, nscan, s.x1, s.x2)
		}
		blit.BlitMosaic(l.mosaic.row[s.x1:s.x2], l.palette.Colors(), dst[s.x1:s.x2], l.mosaic.w, blend)
		wrote = wrote || l.priority
	}

	if l.window.colorOn {
		e.drawWindowColor(l, dst, spans)
		wrote = wrote || l.priority
	}
	return wrote
}

// tileRun resolves a tile to the blitter arguments of a run starting at
// source pixel (srcx, srcy) of the cell. ok is false for empty tiles.
func tileRun(ts *gfx.Tileset, tile gfx.Tile, srcx, srcy int, rotate bool) (pos, step int, key, priority, ok bool) {
	if tile.Empty() {
		return 0, 0, false, false, false
	}
	entry := ts.Resolve(tile.Index)
	if entry == 0 {
		return 0, 0, false, false, false
	}

	tw, th := ts.Width(), ts.Height()
	step = 1
	if tile.Flags.Has(gfx.FlagFlipX) {
		srcx = tw - 1 - srcx
		step = -1
	}
	if tile.Flags.Has(gfx.FlagFlipY) {
		srcy = th - 1 - srcy
	}

	priority = tile.Flags.Has(gfx.FlagPriority) || ts.Attributes(entry).Priority
	if rotate && tile.Flags.Has(gfx.FlagRotate) && tw == th {
		// transposed read: screen columns walk down source rows
		return ts.Offset(entry, srcy, srcx), step * tw, true, priority, true
	}
	return ts.Offset(entry, srcx, srcy), step, ts.HasColorKey(entry, srcy), priority, true
}

func drawTiled(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	ts := l.tileset
	tw, th := ts.Width(), ts.Height()
	palette := l.palette.Colors()
	pixels := ts.Pixels()
	wrote := false

	for x := x1; x < x2; {
		xpos := (l.hstart + x) % l.width
		ypos := l.vstart + nscan
		if l.columns != nil {
			ypos += l.columnOffset((x + l.hstart%tw) / tw)
		}
		ypos = mod(ypos, l.height)

		srcx := xpos % tw
		width := min(tw-srcx, x2-x)
		tile := l.tilemap.Tile(ypos/th, xpos/tw)
		if pos, step, key, pri, ok := tileRun(ts, tile, srcx, ypos%th, true); ok {
			if e.emit(l, palette, pixels, pos, step, 0, x, width, key, pri) {
				wrote = true
			}
		}
		x += width
	}
	return wrote
}

func drawTiledScaling(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	ts := l.tileset
	tw, th := ts.Width(), ts.Height()
	palette := l.palette.Colors()
	pixels := ts.Pixels()
	wrote := false

	xpos := mod(l.hstart+math2d.FixedToInt(x1*l.dx), l.width)
	fixX := math2d.IntToFixed(x1)
	for x := x1; x < x2; {
		offset := 0
		if l.columns != nil {
			offset = l.columnOffset((x + l.hstart%tw) / tw)
		}
		ypos := mod(l.vstart+math2d.FixedToInt((nscan+offset)*l.dy), l.height)

		srcx := xpos % tw
		run := tw - srcx
		fixX += run * l.xfactor
		next := math2d.FixedToInt(fixX)
		full := next - x

		tile := l.tilemap.Tile(ypos/th, xpos/tw)
		if pos, step, key, pri, ok := tileRun(ts, tile, srcx, ypos%th, false); ok && full > 0 {
			dx := math2d.IntToFixed(run) / full
			frac := 0
			if step < 0 {
				dx = -dx
				frac = math2d.FixedOne - 1
			}
			if e.emit(l, palette, pixels, pos, dx, frac, x, min(next, x2)-x, key, pri) {
				wrote = true
			}
		}
		x = next
		xpos = mod(xpos+run, l.width)
	}
	return wrote
}

func drawBitmap(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	bm := l.bitmap
	palette := l.palette.Colors()
	ypos := mod(l.vstart+nscan, l.height)
	xpos := (l.hstart + x1) % l.width
	wrote := false

	for x := x1; x < x2; {
		width := min(l.width-xpos, x2-x)
		if e.emit(l, palette, bm.Pixels(), ypos*bm.Pitch()+xpos, 1, 0, x, width, true, false) {
			wrote = true
		}
		x += width
		xpos = 0
	}
	return wrote
}

func drawBitmapScaling(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	bm := l.bitmap
	palette := l.palette.Colors()
	ypos := mod(l.vstart+math2d.FixedToInt(nscan*l.dy), l.height)
	xpos := mod(l.hstart+math2d.FixedToInt(x1*l.dx), l.width)

	fixX := math2d.IntToFixed(x1)
	wrote := false
	for x := x1; x < x2; {
		run := l.width - xpos
		fixX += run * l.xfactor
		next := math2d.FixedToInt(fixX)
		if full := next - x; full > 0 {
			step := math2d.IntToFixed(run) / full
			if e.emit(l, palette, bm.Pixels(), ypos*bm.Pitch()+xpos, step, 0, x, min(next, x2)-x, true, false) {
				wrote = true
			}
		}
		x = next
		xpos = 0
	}
	return wrote
}

func drawObjects(e *Engine, l *Layer, nscan, x1, x2 int) bool {
	y := l.vstart + nscan
	wrote := false

	for _, o := range l.objects.Objects() {
		if !o.Visible || y < o.Y || y >= o.Y+o.H {
			continue
		}
		left := o.X - l.hstart
		dx1, dx2 := max(left, x1), min(left+o.W, x2)
		if dx1 >= dx2 {
			continue
		}

		srcx, srcy, step := dx1-left, y-o.Y, 1
		if o.Flags.Has(gfx.FlagFlipX) {
			srcx = o.W - 1 - srcx
			step = -1
		}
		if o.Flags.Has(gfx.FlagFlipY) {
			srcy = o.H - 1 - srcy
		}

		palette := l.palette.Colors()
		var src []uint8
		var pos int
		if bm := o.Bitmap; bm != nil {
			if bm.Palette() != nil {
				palette = bm.Palette().Colors()
			}
			src, pos = bm.Pixels(), srcy*bm.Pitch()+srcx
		} else {
			if l.tileset == nil {
				continue
			}
			entry := l.tileset.Resolve(uint16(o.Gid))
			if entry == 0 {
				continue
			}
			src, pos = l.tileset.Pixels(), l.tileset.Offset(entry, srcx, srcy)
			if tw := l.tileset.Width(); o.Flags.Has(gfx.FlagRotate) && tw == l.tileset.Height() {
				pos, step = l.tileset.Offset(entry, srcy, srcx), step*tw
			}
		}

		if e.emit(l, palette, src, pos, step, 0, dx1, dx2-dx1, true, o.Flags.Has(gfx.FlagPriority)) {
			wrote = true
		}
	}
	return wrote
}
