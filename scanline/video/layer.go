package video

import (
	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/math2d"
)

// LayerKind is the source a layer draws from.
type LayerKind int

const (
	LayerNone LayerKind = iota
	LayerTiled
	LayerBitmap
	LayerObjects
	numLayerKinds
)

// LayerMode is the geometric transform applied to a layer.
type LayerMode int

const (
	ModeNormal LayerMode = iota
	ModeScaling
	ModeAffine
	ModePixelMap
	numLayerModes
)

// Affine describes a rotation and scale around a pivot expressed in
// screen coordinates.
type Affine struct {
	Angle  float32
	Dx, Dy float32
	Sx, Sy float32
}

// PixelMap holds the source screen coordinate sampled by one framebuffer
// pixel. The identity table has Dx = x and Dy = y.
type PixelMap struct {
	Dx, Dy int16
}

type rect struct {
	x1, y1, x2, y2 int
}

type mosaic struct {
	w, h int
	row  []uint8
}

// Layer is one background plane. It is configured through Engine methods
// and holds no reference to the engine.
type Layer struct {
	kind LayerKind
	mode LayerMode

	tilemap *gfx.Tilemap
	tileset *gfx.Tileset
	bitmap  *gfx.Bitmap
	objects *gfx.ObjectList
	palette *gfx.Palette

	width, height  int
	hstart, vstart int
	enabled        bool
	priority       bool
	columns        []int
	clip           rect
	window         window
	mosaic         mosaic

	blendMode        blit.BlendMode
	blend            *blit.Table
	blitters         [2]blit.Blitter
	priorityBlitters [2]blit.Blitter
	indexBlitters    [2]blit.IndexBlitter
	draw             layerDrawFunc

	xfactor, dx, dy int
	affine          Affine
	transform       math2d.Matrix3
	pixelMap        []PixelMap

	world layerWorld
}

func (l *Layer) reset(width, height int) {
	*l = Layer{
		clip:    rect{0, 0, width, height},
		xfactor: math2d.FixedOne,
		dx:      math2d.FixedOne,
		dy:      math2d.FixedOne,
	}
	l.transform.SetIdentity()
	l.refresh()
}

// refresh caches the draw strategy and blitters for the current
// configuration. It runs on every configuration change, never per scanline.
func (l *Layer) refresh() {
	mode := l.mode
	if l.kind == LayerObjects {
		mode = ModeNormal
	}
	l.draw = drawers[l.kind][mode]

	scaling := mode == ModeScaling
	hasBlend := l.blend != nil
	for i, key := range [2]bool{false, true} {
		l.blitters[i] = blit.Select(key, scaling, hasBlend)
		l.priorityBlitters[i] = blit.Select(key, scaling, false)
		l.indexBlitters[i] = blit.SelectIndexed(key, scaling)
	}
}

func (l *Layer) setBlend(mode blit.BlendMode, table *blit.Table) {
	l.blendMode = mode
	l.blend = table
	l.refresh()
}

// drawable reports whether the layer has a source, a palette and a strategy.
func (l *Layer) drawable() bool {
	return l.enabled && l.kind != LayerNone && l.palette != nil && l.draw != nil
}

func (l *Layer) coversLine(nscan int) bool {
	return nscan >= l.clip.y1 && nscan < l.clip.y2
}

func (l *Layer) setPosition(h, v int) {
	if l.kind == LayerObjects {
		l.hstart, l.vstart = h, v
	} else {
		l.hstart = mod(h, l.width)
		l.vstart = mod(v, l.height)
	}
	if l.mode == ModeAffine {
		l.updateTransform()
	}
}

func (l *Layer) updateTransform() {
	a := l.affine
	l.transform = math2d.LayerTransform(a.Angle,
		float32(l.hstart)+a.Dx, float32(l.vstart)+a.Dy, a.Sx, a.Sy)
}

func (l *Layer) columnOffset(col int) int {
	if col < 0 || col >= len(l.columns) {
		return 0
	}
	return l.columns[col]
}

// mod is the Euclidean remainder, always in [0, n).
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (e *Engine) layer(n int, op string) (*Layer, error) {
	if n < 0 || n >= len(e.layers) {
		return nil, e.fail(ErrIdxLayer, op, "layer", n)
	}
	return &e.layers[n], nil
}

// SetLayerTilemap draws tm on layer n with the tilemap's own tileset. The
// layer palette defaults to the tileset palette.
func (e *Engine) SetLayerTilemap(n int, tm *gfx.Tilemap) error {
	var ts *gfx.Tileset
	if tm != nil {
		ts = tm.Tileset()
	}
	return e.SetLayer(n, ts, tm)
}

// SetLayer draws tm on layer n using ts, which overrides the tilemap's
// tileset when not nil. A failed call leaves the layer disabled.
func (e *Engine) SetLayer(n int, ts *gfx.Tileset, tm *gfx.Tilemap) error {
	l, err := e.layer(n, "SetLayer")
	if err != nil {
		return err
	}
	if tm == nil {
		l.enabled = false
		return e.fail(ErrRefTilemap, "SetLayer", "layer", n)
	}
	if ts == nil {
		ts = tm.Tileset()
	}
	if ts == nil {
		l.enabled = false
		return e.fail(ErrRefTileset, "SetLayer", "layer", n)
	}

	l.kind = LayerTiled
	l.tilemap = tm
	l.tileset = ts
	l.bitmap = nil
	l.objects = nil
	if ts.Palette() != nil {
		l.palette = ts.Palette()
	}
	l.width = tm.Cols() * ts.Width()
	l.height = tm.Rows() * ts.Height()
	l.enabled = true
	l.setPosition(l.hstart, l.vstart)
	l.refresh()
	return e.succeed()
}

// SetLayerBitmap draws bm on layer n with the bitmap's palette.
func (e *Engine) SetLayerBitmap(n int, bm *gfx.Bitmap) error {
	l, err := e.layer(n, "SetLayerBitmap")
	if err != nil {
		return err
	}
	if bm == nil {
		l.enabled = false
		return e.fail(ErrRefBitmap, "SetLayerBitmap", "layer", n)
	}

	l.kind = LayerBitmap
	l.bitmap = bm
	l.tilemap = nil
	l.tileset = nil
	l.objects = nil
	if bm.Palette() != nil {
		l.palette = bm.Palette()
	}
	l.width = bm.Width()
	l.height = bm.Height()
	l.enabled = true
	l.setPosition(l.hstart, l.vstart)
	l.refresh()
	return e.succeed()
}

// SetLayerObjects draws a list of placed images on layer n. ts provides
// the images of tile objects and may be nil when every object carries its
// own bitmap. Object layers only support the normal mode.
func (e *Engine) SetLayerObjects(n int, list *gfx.ObjectList, ts *gfx.Tileset) error {
	l, err := e.layer(n, "SetLayerObjects")
	if err != nil {
		return err
	}
	if list == nil {
		l.enabled = false
		return e.fail(ErrRefList, "SetLayerObjects", "layer", n)
	}

	l.kind = LayerObjects
	l.objects = list
	l.tileset = ts
	l.tilemap = nil
	l.bitmap = nil
	l.mode = ModeNormal
	switch {
	case ts != nil && ts.Palette() != nil:
		l.palette = ts.Palette()
	case l.palette == nil:
		for _, o := range list.Objects() {
			if o.Bitmap != nil && o.Bitmap.Palette() != nil {
				l.palette = o.Bitmap.Palette()
				break
			}
		}
	}
	l.width, l.height = list.Bounds()
	l.enabled = true
	l.refresh()
	return e.succeed()
}

// SetLayerPalette overrides the palette of layer n. A nil palette
// disables the layer.
func (e *Engine) SetLayerPalette(n int, p *gfx.Palette) error {
	l, err := e.layer(n, "SetLayerPalette")
	if err != nil {
		return err
	}
	if p == nil {
		l.enabled = false
		return e.fail(ErrRefPalette, "SetLayerPalette", "layer", n)
	}
	l.palette = p
	return e.succeed()
}

// EnableLayer re-enables a configured layer.
func (e *Engine) EnableLayer(n int) error {
	l, err := e.layer(n, "EnableLayer")
	if err != nil {
		return err
	}
	if l.kind == LayerNone {
		return e.fail(ErrRefTilemap, "EnableLayer", "layer", n)
	}
	if l.palette == nil {
		return e.fail(ErrRefPalette, "EnableLayer", "layer", n)
	}
	l.enabled = true
	return e.succeed()
}

// DisableLayer stops drawing layer n. Its configuration is kept.
func (e *Engine) DisableLayer(n int) error {
	l, err := e.layer(n, "DisableLayer")
	if err != nil {
		return err
	}
	l.enabled = false
	return e.succeed()
}

// SetLayerPosition scrolls layer n so that layer pixel (h, v) lands on the
// top-left corner of the framebuffer. Tiled and bitmap layers wrap.
func (e *Engine) SetLayerPosition(n, h, v int) error {
	l, err := e.layer(n, "SetLayerPosition")
	if err != nil {
		return err
	}
	l.setPosition(h, v)
	return e.succeed()
}

// LayerPosition returns the current scroll of layer n.
func (e *Engine) LayerPosition(n int) (h, v int, err error) {
	l, err := e.layer(n, "LayerPosition")
	if err != nil {
		return 0, 0, err
	}
	e.lastErr = OK
	return l.hstart, l.vstart, nil
}

// LayerWidth returns the width of the layer source in pixels.
func (e *Engine) LayerWidth(n int) int {
	l, err := e.layer(n, "LayerWidth")
	if err != nil {
		return 0
	}
	e.lastErr = OK
	return l.width
}

// LayerHeight returns the height of the layer source in pixels.
func (e *Engine) LayerHeight(n int) int {
	l, err := e.layer(n, "LayerHeight")
	if err != nil {
		return 0
	}
	e.lastErr = OK
	return l.height
}

// SetLayerClip restricts layer n to the framebuffer rectangle
// [x1,x2)×[y1,y2). Coordinates outside the framebuffer fall back to its
// edges.
func (e *Engine) SetLayerClip(n, x1, y1, x2, y2 int) error {
	l, err := e.layer(n, "SetLayerClip")
	if err != nil {
		return err
	}
	if x1 < 0 || x1 > e.width {
		x1 = 0
	}
	if y1 < 0 || y1 > e.height {
		y1 = 0
	}
	if x2 < 0 || x2 > e.width {
		x2 = e.width
	}
	if y2 < 0 || y2 > e.height {
		y2 = e.height
	}
	l.clip = rect{x1, y1, x2, y2}
	return e.succeed()
}

// DisableLayerClip restores the full framebuffer as clip rectangle.
func (e *Engine) DisableLayerClip(n int) error {
	l, err := e.layer(n, "DisableLayerClip")
	if err != nil {
		return err
	}
	l.clip = rect{0, 0, e.width, e.height}
	return e.succeed()
}

// SetLayerColumnOffset shifts each screen tile column vertically by the
// matching entry of offsets. Passing nil disables the effect.
func (e *Engine) SetLayerColumnOffset(n int, offsets []int) error {
	l, err := e.layer(n, "SetLayerColumnOffset")
	if err != nil {
		return err
	}
	l.columns = offsets
	return e.succeed()
}

// SetLayerBlendMode sets how layer n combines with what is below it.
func (e *Engine) SetLayerBlendMode(n int, mode blit.BlendMode) error {
	l, err := e.layer(n, "SetLayerBlendMode")
	if err != nil {
		return err
	}
	l.setBlend(mode, e.blendTable(mode))
	return e.succeed()
}

// SetLayerPriority moves the whole layer in front of regular sprites.
func (e *Engine) SetLayerPriority(n int, enable bool) error {
	l, err := e.layer(n, "SetLayerPriority")
	if err != nil {
		return err
	}
	l.priority = enable
	return e.succeed()
}

// SetLayerMosaic pixelates layer n into blocks of w×h pixels. A zero size
// disables the effect.
func (e *Engine) SetLayerMosaic(n, w, h int) error {
	l, err := e.layer(n, "SetLayerMosaic")
	if err != nil {
		return err
	}
	if w < 0 || h < 0 {
		return e.fail(ErrWrongSize, "SetLayerMosaic", "layer", n)
	}
	if w == 0 || h == 0 {
		l.mosaic = mosaic{}
		return e.succeed()
	}
	if l.mosaic.row == nil {
		l.mosaic.row = make([]uint8, e.width)
	}
	l.mosaic.w, l.mosaic.h = w, h
	return e.succeed()
}

// DisableLayerMosaic turns the mosaic effect off.
func (e *Engine) DisableLayerMosaic(n int) error {
	return e.SetLayerMosaic(n, 0, 0)
}

// SetLayerScaling draws layer n scaled by (sx, sy).
func (e *Engine) SetLayerScaling(n int, sx, sy float32) error {
	l, err := e.layer(n, "SetLayerScaling")
	if err != nil {
		return err
	}
	// both factors and their inverses must be representable in 16.16
	if !(sx > 0 && sy > 0) ||
		math2d.FloatToFixed(sx) < 1 || math2d.FloatToFixed(sy) < 1 ||
		math2d.FloatToFixed(1/sx) < 1 || math2d.FloatToFixed(1/sy) < 1 {
		return e.fail(ErrWrongSize, "SetLayerScaling", "layer", n, "sx", sx, "sy", sy)
	}
	if l.kind == LayerObjects {
		return e.fail(ErrUnsupported, "SetLayerScaling", "layer", n)
	}
	l.xfactor = math2d.FloatToFixed(sx)
	l.dx = math2d.FloatToFixed(1 / sx)
	l.dy = math2d.FloatToFixed(1 / sy)
	l.mode = ModeScaling
	l.refresh()
	return e.succeed()
}

// SetLayerAffineTransform rotates and scales layer n. Passing nil restores
// the normal mode.
func (e *Engine) SetLayerAffineTransform(n int, a *Affine) error {
	if a == nil {
		return e.ResetLayerMode(n)
	}
	l, err := e.layer(n, "SetLayerAffineTransform")
	if err != nil {
		return err
	}
	if a.Sx == 0 || a.Sy == 0 {
		return e.fail(ErrWrongSize, "SetLayerAffineTransform", "layer", n)
	}
	if l.kind == LayerObjects {
		return e.fail(ErrUnsupported, "SetLayerAffineTransform", "layer", n)
	}
	l.affine = *a
	l.mode = ModeAffine
	l.updateTransform()
	l.refresh()
	return e.succeed()
}

// SetLayerTransform is SetLayerAffineTransform with discrete arguments.
func (e *Engine) SetLayerTransform(n int, angle, dx, dy, sx, sy float32) error {
	return e.SetLayerAffineTransform(n, &Affine{Angle: angle, Dx: dx, Dy: dy, Sx: sx, Sy: sy})
}

// SetLayerPixelMapping samples layer n through a per-pixel displacement
// table of Width×Height entries. Passing nil restores the normal mode.
func (e *Engine) SetLayerPixelMapping(n int, table []PixelMap) error {
	if table == nil {
		return e.ResetLayerMode(n)
	}
	l, err := e.layer(n, "SetLayerPixelMapping")
	if err != nil {
		return err
	}
	if len(table) < e.width*e.height {
		return e.fail(ErrWrongSize, "SetLayerPixelMapping", "layer", n, "entries", len(table))
	}
	if l.kind == LayerObjects {
		return e.fail(ErrUnsupported, "SetLayerPixelMapping", "layer", n)
	}
	l.pixelMap = table
	l.mode = ModePixelMap
	l.refresh()
	return e.succeed()
}

// IdentityPixelMap returns a table that samples every pixel from itself.
func IdentityPixelMap(width, height int) []PixelMap {
	table := make([]PixelMap, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			table[y*width+x] = PixelMap{Dx: int16(x), Dy: int16(y)}
		}
	}
	return table
}

// ResetLayerMode drops scaling, affine and pixel mapping from layer n.
func (e *Engine) ResetLayerMode(n int) error {
	l, err := e.layer(n, "ResetLayerMode")
	if err != nil {
		return err
	}
	l.mode = ModeNormal
	l.xfactor, l.dx, l.dy = math2d.FixedOne, math2d.FixedOne, math2d.FixedOne
	l.pixelMap = nil
	l.transform.SetIdentity()
	l.refresh()
	return e.succeed()
}

// LayerMode returns the active transform mode of layer n.
func (e *Engine) LayerMode(n int) LayerMode {
	l, err := e.layer(n, "LayerMode")
	if err != nil {
		return ModeNormal
	}
	e.lastErr = OK
	return l.mode
}

// TileInfo describes the tile under a layer-space position.
type TileInfo struct {
	Index   uint16
	Flags   gfx.Flags
	Row     int
	Col     int
	XOffset int
	YOffset int
	Color   uint8
	Type    uint8
	Empty   bool
}

// LayerTile returns the tile of layer n covering layer-space pixel (x, y).
// Coordinates wrap around the layer size.
func (e *Engine) LayerTile(n, x, y int) (TileInfo, error) {
	l, err := e.layer(n, "LayerTile")
	if err != nil {
		return TileInfo{}, err
	}
	if l.kind != LayerTiled {
		return TileInfo{}, e.fail(ErrUnsupported, "LayerTile", "layer", n)
	}

	ts := l.tileset
	x, y = mod(x, l.width), mod(y, l.height)
	info := TileInfo{
		Row:     y / ts.Height(),
		Col:     x / ts.Width(),
		XOffset: x % ts.Width(),
		YOffset: y % ts.Height(),
	}
	tile := l.tilemap.Tile(info.Row, info.Col)
	info.Index = tile.Index
	info.Flags = tile.Flags
	info.Empty = tile.Empty()
	if !info.Empty {
		entry := ts.Resolve(tile.Index)
		info.Type = ts.Attributes(entry).Type
		info.Color = l.tiledPixel(x, y)
	}
	return info, e.succeed()
}
