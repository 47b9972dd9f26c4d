package video

import (
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/math2d"
)

// spriteCoversLine reports whether sprite s has pixels on scanline nscan.
func (e *Engine) spriteCoversLine(s *Sprite, nscan int) bool {
	if nscan < s.dst.y1 || nscan >= s.dst.y2 || s.dst.x1 >= s.dst.x2 {
		return false
	}
	if s.flags.Has(gfx.FlagMasked) && nscan >= e.maskTop && nscan < e.maskBottom {
		return false
	}
	return true
}

// drawSprite renders the row of sprite n that falls on scanline nscan.
func (e *Engine) drawSprite(n, nscan int) {
	s := &e.sprites[n]
	if !e.spriteCoversLine(s, nscan) {
		return
	}

	atlas := s.spriteset.Atlas()
	pixels, pitch := atlas.Pixels(), atlas.Pitch()
	w, h := s.info.W, s.info.H
	x, width := s.dst.x1, s.dst.x2-s.dst.x1
	palette := s.palette.Colors()

	var pos, step, frac int
	if !s.scaling {
		srcx := s.src.x1
		srcy := s.src.y1 + nscan - s.dst.y1
		step = 1
		if s.flags.Has(gfx.FlagFlipX) {
			srcx = w - srcx - 1
			step = -1
		}
		if s.flags.Has(gfx.FlagFlipY) {
			srcy = h - srcy - 1
		}
		if s.flags.Has(gfx.FlagRotate) && w == h {
			pos = (s.info.Y+srcx)*pitch + s.info.X + srcy
			step *= pitch
		} else {
			pos = (s.info.Y+srcy)*pitch + s.info.X + srcx
		}
	} else {
		srcy := math2d.FixedToInt(s.src.y1 + (nscan-s.dst.y1)*s.dy)
		frac, step = s.src.x1, s.dx
		if s.flags.Has(gfx.FlagFlipX) {
			frac = math2d.IntToFixed(w) - 1 - frac
			step = -step
		}
		if s.flags.Has(gfx.FlagFlipY) {
			srcy = h - srcy - 1
		}
		pos = (s.info.Y+srcy)*pitch + s.info.X
	}

	s.blitter(pixels, pos, step, frac, palette, e.scan[x:x+width], s.blend)
	if s.collision {
		e.checkCollision(n, pixels, pos, step, frac, x, width, s.scaling)
	}
}

// checkCollision walks the same source pixels as the blitter and claims
// the collision cells under every opaque one.
func (e *Engine) checkCollision(n int, src []uint8, pos, step, frac, x, width int, scaling bool) {
	for i := 0; i < width; i++ {
		var idx uint8
		if scaling {
			idx = src[pos+math2d.FixedToInt(frac)]
			frac += step
		} else {
			idx = src[pos]
			pos += step
		}
		if idx == 0 {
			continue
		}
		if other := e.collision.Claim(x+i, n); other != noSprite && other != n {
			e.sprites[n].collided = true
			e.sprites[other].collided = true
		}
	}
}
