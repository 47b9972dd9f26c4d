package video

import (
	"log/slog"

	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/display"
	"github.com/valerio/go-scanline/scanline/gfx"
)

// Config sizes an engine context.
type Config struct {
	Width      int
	Height     int
	NumLayers  int
	NumSprites int
	Logger     *slog.Logger
}

// DefaultConfig returns the default resolution with the default number of
// layers and sprites.
func DefaultConfig() Config {
	return Config{
		Width:      display.DefaultWidth,
		Height:     display.DefaultHeight,
		NumLayers:  display.DefaultNumLayers,
		NumSprites: display.DefaultNumSprites,
	}
}

// RasterFunc runs before scanline line is composed.
type RasterFunc func(line int)

// FrameFunc runs at the start of every frame.
type FrameFunc func(frame int)

// Engine is one rendering context. It owns its layers, sprites and scratch
// rows, and renders into a caller-owned framebuffer one scanline at a time.
//
// An Engine is not safe for concurrent use. Independent engines may run in
// parallel.
type Engine struct {
	width, height int

	layers  []Layer
	sprites []Sprite
	list    *spriteList

	target *Framebuffer
	line   int
	scan   []uint32

	bgColor   uint32
	bgBitmap  *gfx.Bitmap
	bgPalette *gfx.Palette

	priorityRow []uint32
	collision   *CollisionBuffer
	indexRow    []uint8
	spans       []span
	anyPriority bool
	maskTop     int
	maskBottom  int
	customBlend *blit.Table
	world       world
	rasterFn    RasterFunc
	frameFn     FrameFunc
	lastErr     Error
	logger      *slog.Logger
	closed      bool
}

// New creates an engine context. The framebuffer is bound separately with
// SetRenderTarget.
func New(cfg Config) (*Engine, error) {
	if cfg.Width < 1 || cfg.Height < 1 || cfg.NumLayers < 0 || cfg.NumSprites < 0 {
		return nil, ErrWrongSize
	}

	e := &Engine{
		width:       cfg.Width,
		height:      cfg.Height,
		layers:      make([]Layer, cfg.NumLayers),
		sprites:     make([]Sprite, cfg.NumSprites),
		list:        newSpriteList(cfg.NumSprites),
		bgColor:     display.OpaqueAlpha,
		priorityRow: make([]uint32, cfg.Width),
		collision:   NewCollisionBuffer(cfg.Width),
		indexRow:    make([]uint8, cfg.Width),
		spans:       make([]span, 0, 3),
		logger:      cfg.Logger,
	}
	if e.logger == nil {
		e.logger = newNopLogger()
	}

	for i := range e.layers {
		e.layers[i].reset(e.width, e.height)
	}
	for i := range e.sprites {
		e.sprites[i].reset()
	}

	e.logger.Info("Engine created",
		"width", cfg.Width,
		"height", cfg.Height,
		"layers", cfg.NumLayers,
		"sprites", cfg.NumSprites)
	return e, nil
}

// Close releases the scratch buffers. The engine must not be used afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.target = nil
	e.layers = nil
	e.sprites = nil
	e.priorityRow = nil
	e.indexRow = nil
	e.logger.Info("Engine closed")
}

// Width returns the framebuffer width the engine renders.
func (e *Engine) Width() int { return e.width }

// Height returns the framebuffer height the engine renders.
func (e *Engine) Height() int { return e.height }

// NumLayers returns the number of layer slots.
func (e *Engine) NumLayers() int { return len(e.layers) }

// NumSprites returns the number of sprite slots.
func (e *Engine) NumSprites() int { return len(e.sprites) }

// SetRenderTarget binds the framebuffer the compositor writes to. It must
// match the engine resolution. Passing nil unbinds the target.
func (e *Engine) SetRenderTarget(fb *Framebuffer) error {
	if fb == nil {
		e.target = nil
		return e.succeed()
	}
	if fb.Width != e.width || fb.Height != e.height || !fb.valid() {
		return e.fail(ErrWrongSize, "SetRenderTarget", "width", fb.Width, "height", fb.Height)
	}
	e.target = fb
	return e.succeed()
}

// RenderTarget returns the bound framebuffer, or nil.
func (e *Engine) RenderTarget() *Framebuffer { return e.target }

// SetBGColor sets the solid color each scanline starts from.
func (e *Engine) SetBGColor(r, g, b uint8) {
	e.bgColor = display.PackRGB(r, g, b)
	e.lastErr = OK
}

// SetBGColorFromTilemap uses the background color stored in a tilemap.
func (e *Engine) SetBGColorFromTilemap(tm *gfx.Tilemap) error {
	if tm == nil {
		return e.fail(ErrRefTilemap, "SetBGColorFromTilemap")
	}
	e.bgColor = tm.BGColor()
	return e.succeed()
}

// DisableBGColor stops clearing scanlines, leaving whatever the
// framebuffer holds behind the layers.
func (e *Engine) DisableBGColor() {
	e.bgColor = 0
	e.lastErr = OK
}

// SetBGBitmap draws a static bitmap behind all layers, with its own
// palette. Passing nil disables it.
func (e *Engine) SetBGBitmap(bm *gfx.Bitmap) error {
	e.bgBitmap = bm
	if bm != nil {
		e.bgPalette = bm.Palette()
	} else {
		e.bgPalette = nil
	}
	return e.succeed()
}

// SetBGPalette replaces the palette of the background bitmap.
func (e *Engine) SetBGPalette(p *gfx.Palette) error {
	if p == nil {
		return e.fail(ErrRefPalette, "SetBGPalette")
	}
	e.bgPalette = p
	return e.succeed()
}

// DisableBGBitmap removes the background bitmap.
func (e *Engine) DisableBGBitmap() {
	e.bgBitmap = nil
	e.bgPalette = nil
	e.lastErr = OK
}

// SetRasterCallback installs fn to run before every scanline. fn may
// reconfigure layers and sprites; the change applies from that scanline.
func (e *Engine) SetRasterCallback(fn RasterFunc) {
	e.rasterFn = fn
}

// SetFrameCallback installs fn to run at the start of every frame.
func (e *Engine) SetFrameCallback(fn FrameFunc) {
	e.frameFn = fn
}

// SetCustomBlendFunction defines the law used by BlendCustom. Layers and
// sprites already using BlendCustom pick up the new table.
func (e *Engine) SetCustomBlendFunction(fn blit.BlendFunc) error {
	if fn == nil {
		return e.fail(ErrNullPointer, "SetCustomBlendFunction")
	}
	e.customBlend = blit.NewCustomTable(fn)
	for i := range e.layers {
		if e.layers[i].blendMode == blit.BlendCustom {
			e.layers[i].setBlend(blit.BlendCustom, e.customBlend)
		}
	}
	for i := range e.sprites {
		if e.sprites[i].blendMode == blit.BlendCustom {
			e.sprites[i].setBlend(blit.BlendCustom, e.customBlend)
		}
	}
	for i := range e.layers {
		if w := &e.layers[i].window; w.blendMode == blit.BlendCustom {
			w.blend = e.customBlend
		}
	}
	return e.succeed()
}

// blendTable resolves mode to its lookup table, or nil when blending is off.
func (e *Engine) blendTable(mode blit.BlendMode) *blit.Table {
	if mode == blit.BlendCustom {
		return e.customBlend
	}
	return blit.Blend(mode)
}
