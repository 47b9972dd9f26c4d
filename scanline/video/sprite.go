package video

import (
	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/math2d"
)

// Sprite is one movable picture taken from a spriteset.
type Sprite struct {
	spriteset *gfx.Spriteset
	palette   *gfx.Palette
	picture   int
	info      gfx.SpriteData

	x, y    int
	px, py  float32
	sx, sy  float32
	scaling bool
	flags   gfx.Flags

	// src is in pixels, or 16.16 on the x axis and for y1 when scaling.
	src, dst rect
	dx, dy   int

	blendMode blit.BlendMode
	blend     *blit.Table
	blitter   blit.Blitter

	ok        bool
	collision bool
	collided  bool
	world     spriteWorld
}

// SpriteState is a snapshot of a sprite's configuration and screen
// rectangle.
type SpriteState struct {
	X, Y      int
	W, H      int
	Flags     gfx.Flags
	Spriteset *gfx.Spriteset
	Palette   *gfx.Palette
	Picture   int
	Enabled   bool
	Collision bool
}

func (s *Sprite) reset() {
	*s = Sprite{sx: 1, sy: 1}
	s.refresh()
}

func (s *Sprite) setBlend(mode blit.BlendMode, table *blit.Table) {
	s.blendMode = mode
	s.blend = table
	s.refresh()
}

func (s *Sprite) refresh() {
	s.blitter = blit.Select(true, s.scaling, s.blend != nil)
}

func (s *Sprite) drawable() bool {
	return s.ok && s.spriteset != nil && s.palette != nil
}

// update recomputes the clipped source and destination rectangles against
// a width×height framebuffer.
func (s *Sprite) update(width, height int) {
	w, h := s.info.W, s.info.H

	if !s.scaling {
		x1 := s.x - int(float32(w)*s.px)
		y1 := s.y - int(float32(h)*s.py)
		s.dst = rect{x1, y1, x1 + w, y1 + h}
		s.src = rect{0, 0, w, h}

		if s.dst.x1 < 0 {
			s.src.x1 -= s.dst.x1
			s.dst.x1 = 0
		}
		if s.dst.y1 < 0 {
			s.src.y1 -= s.dst.y1
			s.dst.y1 = 0
		}
		if s.dst.x2 > width {
			s.src.x2 -= s.dst.x2 - width
			s.dst.x2 = width
		}
		if s.dst.y2 > height {
			s.src.y2 -= s.dst.y2 - height
			s.dst.y2 = height
		}
		return
	}

	dstw := int(float32(w) * s.sx)
	dsth := int(float32(h) * s.sy)
	x1 := s.x - int(float32(dstw)*s.px)
	y1 := s.y - int(float32(dsth)*s.py)
	s.dst = rect{x1, y1, x1 + dstw, y1 + dsth}
	if dstw < 1 || dsth < 1 {
		s.dx, s.dy = 0, 0
		s.src = rect{}
		return
	}

	s.dx = math2d.IntToFixed(w) / dstw
	s.dy = math2d.IntToFixed(h) / dsth
	s.src = rect{0, 0, math2d.IntToFixed(w), math2d.IntToFixed(h)}

	if s.dst.x1 < 0 {
		s.src.x1 = -s.dst.x1 * s.dx
		s.dst.x1 = 0
	}
	if s.dst.y1 < 0 {
		s.src.y1 = -s.dst.y1 * s.dy
		s.dst.y1 = 0
	}
	if s.dst.x2 > width {
		s.src.x2 -= (s.dst.x2 - width) * s.dx
		s.dst.x2 = width
	}
	if s.dst.y2 > height {
		s.src.y2 -= (s.dst.y2 - height) * s.dy
		s.dst.y2 = height
	}
}

func (e *Engine) sprite(n int, op string) (*Sprite, error) {
	if n < 0 || n >= len(e.sprites) {
		return nil, e.fail(ErrIdxSprite, op, "sprite", n)
	}
	return &e.sprites[n], nil
}

// ConfigSprite assigns a spriteset to sprite n, shows its first picture
// and enables the sprite at the end of the draw list.
func (e *Engine) ConfigSprite(n int, ss *gfx.Spriteset, flags gfx.Flags) error {
	s, err := e.sprite(n, "ConfigSprite")
	if err != nil {
		return err
	}
	if ss == nil {
		s.ok = false
		return e.fail(ErrRefSpriteset, "ConfigSprite", "sprite", n)
	}
	if err := e.SetSpriteSet(n, ss); err != nil {
		return err
	}
	s.flags = flags
	s.update(e.width, e.height)
	return e.succeed()
}

// SetSpriteSet replaces the spriteset of sprite n and shows picture 0.
func (e *Engine) SetSpriteSet(n int, ss *gfx.Spriteset) error {
	s, err := e.sprite(n, "SetSpriteSet")
	if err != nil {
		return err
	}
	if ss == nil || ss.Len() == 0 {
		s.ok = false
		return e.fail(ErrRefSpriteset, "SetSpriteSet", "sprite", n)
	}
	s.spriteset = ss
	s.palette = ss.Palette()
	s.picture = 0
	s.info, _ = ss.Picture(0)
	s.ok = true
	s.update(e.width, e.height)
	e.list.append(n)
	return e.succeed()
}

// SetSpritePicture shows picture pic of the sprite's spriteset.
func (e *Engine) SetSpritePicture(n, pic int) error {
	s, err := e.sprite(n, "SetSpritePicture")
	if err != nil {
		return err
	}
	if s.spriteset == nil {
		return e.fail(ErrRefSpriteset, "SetSpritePicture", "sprite", n)
	}
	info, perr := s.spriteset.Picture(pic)
	if perr != nil {
		return e.fail(ErrIdxPicture, "SetSpritePicture", "sprite", n, "picture", pic)
	}
	s.picture = pic
	s.info = info
	s.update(e.width, e.height)
	return e.succeed()
}

// SetSpritePosition places the sprite pivot at framebuffer (x, y). It
// detaches the sprite from world coordinates.
func (e *Engine) SetSpritePosition(n, x, y int) error {
	s, err := e.sprite(n, "SetSpritePosition")
	if err != nil {
		return err
	}
	s.world.enabled = false
	s.x, s.y = x, y
	s.update(e.width, e.height)
	return e.succeed()
}

// SetSpriteFlags replaces the flip, rotate, priority and mask flags.
func (e *Engine) SetSpriteFlags(n int, flags gfx.Flags) error {
	s, err := e.sprite(n, "SetSpriteFlags")
	if err != nil {
		return err
	}
	s.flags = flags
	s.update(e.width, e.height)
	return e.succeed()
}

// EnableSpriteFlag sets or clears individual flags.
func (e *Engine) EnableSpriteFlag(n int, flag gfx.Flags, enable bool) error {
	s, err := e.sprite(n, "EnableSpriteFlag")
	if err != nil {
		return err
	}
	return e.SetSpriteFlags(n, s.flags.Set(flag, enable))
}

// EnableSpriteMasking hides sprite n inside the engine mask region.
func (e *Engine) EnableSpriteMasking(n int, enable bool) error {
	return e.EnableSpriteFlag(n, gfx.FlagMasked, enable)
}

// SetSpritesMaskRegion sets the scanline range [top, bottom) where masked
// sprites are hidden.
func (e *Engine) SetSpritesMaskRegion(top, bottom int) {
	e.maskTop, e.maskBottom = top, bottom
	e.lastErr = OK
}

// SetSpritePivot sets the anchor of the sprite, normalized to its size.
// (0, 0) is the top-left corner and (0.5, 0.5) the center.
func (e *Engine) SetSpritePivot(n int, px, py float32) error {
	s, err := e.sprite(n, "SetSpritePivot")
	if err != nil {
		return err
	}
	s.px, s.py = px, py
	s.update(e.width, e.height)
	return e.succeed()
}

// SetSpriteScaling draws sprite n scaled by (sx, sy).
func (e *Engine) SetSpriteScaling(n int, sx, sy float32) error {
	s, err := e.sprite(n, "SetSpriteScaling")
	if err != nil {
		return err
	}
	if sx <= 0 || sy <= 0 {
		return e.fail(ErrWrongSize, "SetSpriteScaling", "sprite", n)
	}
	s.sx, s.sy = sx, sy
	s.scaling = true
	s.refresh()
	s.update(e.width, e.height)
	return e.succeed()
}

// ResetSpriteScaling restores the natural size of sprite n.
func (e *Engine) ResetSpriteScaling(n int) error {
	s, err := e.sprite(n, "ResetSpriteScaling")
	if err != nil {
		return err
	}
	s.sx, s.sy = 1, 1
	s.scaling = false
	s.refresh()
	s.update(e.width, e.height)
	return e.succeed()
}

// SetSpriteBlendMode sets how sprite n combines with what is below it.
func (e *Engine) SetSpriteBlendMode(n int, mode blit.BlendMode) error {
	s, err := e.sprite(n, "SetSpriteBlendMode")
	if err != nil {
		return err
	}
	s.setBlend(mode, e.blendTable(mode))
	return e.succeed()
}

// SetSpritePalette overrides the palette of sprite n. A nil palette
// disables the sprite.
func (e *Engine) SetSpritePalette(n int, p *gfx.Palette) error {
	s, err := e.sprite(n, "SetSpritePalette")
	if err != nil {
		return err
	}
	if p == nil {
		s.ok = false
		return e.fail(ErrRefPalette, "SetSpritePalette", "sprite", n)
	}
	s.palette = p
	return e.succeed()
}

// EnableSpriteCollision turns pixel-accurate collision detection on or off
// for sprite n.
func (e *Engine) EnableSpriteCollision(n int, enable bool) error {
	s, err := e.sprite(n, "EnableSpriteCollision")
	if err != nil {
		return err
	}
	s.collision = enable
	if !enable {
		s.collided = false
	}
	return e.succeed()
}

// SpriteCollision reports whether sprite n overlapped another
// collision-enabled sprite during the last frame.
func (e *Engine) SpriteCollision(n int) bool {
	s, err := e.sprite(n, "SpriteCollision")
	if err != nil {
		return false
	}
	e.lastErr = OK
	return s.collided
}

// DisableSprite releases sprite n and removes it from the draw list.
func (e *Engine) DisableSprite(n int) error {
	s, err := e.sprite(n, "DisableSprite")
	if err != nil {
		return err
	}
	s.ok = false
	s.collided = false
	s.world.enabled = false
	e.list.unlink(n)
	return e.succeed()
}

// SpriteState returns the configuration of sprite n.
func (e *Engine) SpriteState(n int) (SpriteState, error) {
	s, err := e.sprite(n, "SpriteState")
	if err != nil {
		return SpriteState{}, err
	}
	return SpriteState{
		X:         s.dst.x1,
		Y:         s.dst.y1,
		W:         s.dst.x2 - s.dst.x1,
		H:         s.dst.y2 - s.dst.y1,
		Flags:     s.flags,
		Spriteset: s.spriteset,
		Palette:   s.palette,
		Picture:   s.picture,
		Enabled:   s.ok,
		Collision: s.collision,
	}, e.succeed()
}

// FirstFreeSprite returns the lowest unused sprite slot, or -1.
func (e *Engine) FirstFreeSprite() int {
	e.lastErr = OK
	for i := range e.sprites {
		if !e.sprites[i].ok {
			return i
		}
	}
	return -1
}

// SetFirstSprite moves sprite n to the front of the draw list, so it is
// drawn first and appears behind every other sprite.
func (e *Engine) SetFirstSprite(n int) error {
	if _, err := e.sprite(n, "SetFirstSprite"); err != nil {
		return err
	}
	e.list.moveFirst(n)
	return e.succeed()
}

// SetNextSprite moves sprite next right after sprite n in the draw list.
func (e *Engine) SetNextSprite(n, next int) error {
	if _, err := e.sprite(n, "SetNextSprite"); err != nil {
		return err
	}
	if _, err := e.sprite(next, "SetNextSprite"); err != nil {
		return err
	}
	if n == next || !e.list.contains(n) {
		return e.fail(ErrIdxSprite, "SetNextSprite", "sprite", n, "next", next)
	}
	e.list.moveAfter(n, next)
	return e.succeed()
}

// SpriteOrder returns the sprite slots in draw order.
func (e *Engine) SpriteOrder() []int {
	return e.list.order()
}
