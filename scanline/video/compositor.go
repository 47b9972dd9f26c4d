package video

import (
	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
)

// BeginFrame starts a new frame: the scanline counter goes back to 0,
// collision flags are cleared, world positions are applied and the frame
// callback runs.
func (e *Engine) BeginFrame(frame int) {
	e.line = 0
	for i := range e.sprites {
		e.sprites[i].collided = false
	}
	e.updateWorld()
	if e.frameFn != nil {
		e.frameFn(frame)
	}
}

// DrawNextScanline composes the current scanline into the render target
// and advances. It reports whether more scanlines remain; once the frame
// is complete it draws nothing and returns false.
//
// Composition order, back to front:
//  1. raster callback
//  2. background bitmap or color
//  3. regular layers, last slot first
//  4. regular sprites in list order
//  5. priority layers
//  6. priority tiles of every layer
//  7. priority sprites
func (e *Engine) DrawNextScanline() bool {
	if e.closed || e.target == nil || e.line >= e.height {
		return false
	}
	nscan := e.line
	if e.rasterFn != nil {
		e.rasterFn(nscan)
		// the callback may have unbound or closed the target
		if e.closed || e.target == nil {
			return false
		}
	}

	e.scan = e.target.Line(nscan)
	e.drawBackground(nscan)
	clear(e.priorityRow)
	e.collision.Clear()

	background := false
	for i := len(e.layers) - 1; i >= 0; i-- {
		l := &e.layers[i]
		if l.priority || !l.drawable() || !l.coversLine(nscan) {
			continue
		}
		if e.drawLayer(l, nscan) {
			background = true
		}
	}

	e.anyPriority = false
	for n := e.list.first; n != noNode; n = e.list.nodes[n].next {
		s := &e.sprites[n]
		if !s.drawable() {
			continue
		}
		if s.flags.Has(gfx.FlagPriority) {
			e.anyPriority = true
			continue
		}
		e.drawSprite(n, nscan)
	}

	for i := len(e.layers) - 1; i >= 0; i-- {
		l := &e.layers[i]
		if !l.priority || !l.drawable() || !l.coversLine(nscan) {
			continue
		}
		if e.drawLayer(l, nscan) {
			background = true
		}
	}

	if background {
		blit.Blit32(e.priorityRow, e.scan, nil)
	}

	if e.anyPriority {
		for n := e.list.first; n != noNode; n = e.list.nodes[n].next {
			s := &e.sprites[n]
			if s.drawable() && s.flags.Has(gfx.FlagPriority) {
				e.drawSprite(n, nscan)
			}
		}
	}

	e.line++
	return e.line < e.height
}

func (e *Engine) drawBackground(nscan int) {
	if bm := e.bgBitmap; bm != nil && e.bgPalette != nil {
		if nscan < bm.Height() {
			width := min(bm.Width(), len(e.scan))
			fast := blit.Select(false, false, false)
			fast(bm.Pixels(), nscan*bm.Pitch(), 1, 0, e.bgPalette.Colors(), e.scan[:width], nil)
		}
		return
	}
	if e.bgColor != 0 {
		blit.BlitColor(e.scan, e.bgColor, nil)
	}
}

// UpdateFrame renders a complete frame into the render target.
func (e *Engine) UpdateFrame(frame int) error {
	if e.closed || e.target == nil {
		return e.fail(ErrNullPointer, "UpdateFrame")
	}
	e.BeginFrame(frame)
	for e.DrawNextScanline() {
	}
	return e.succeed()
}

// Line returns the index of the next scanline to draw.
func (e *Engine) Line() int {
	return e.line
}
