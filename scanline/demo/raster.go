package demo

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/video"
)

// rasterScene bends a plasma through a pixel map, scrolls a striped
// layer per scanline from the raster callback and hides masked sprites
// inside a band of scanlines.
type rasterScene struct {
	table     []video.PixelMap
	amplitude *pingPong
	frame     int
}

func (s *rasterScene) Name() string { return "raster" }

func (s *rasterScene) Setup(e *video.Engine) error {
	palette, err := newScenePalette()
	if err != nil {
		return err
	}
	bm, err := newPlasmaBitmap(palette, 256, 256)
	if err != nil {
		return err
	}
	if err := e.SetLayerBitmap(1, bm); err != nil {
		return err
	}
	s.table = video.IdentityPixelMap(e.Width(), e.Height())
	if err := e.SetLayerPixelMapping(1, s.table); err != nil {
		return err
	}

	ts, err := newSceneTileset(palette)
	if err != nil {
		return err
	}
	stripes, err := newSceneTilemap(ts, 4, 64, func(row, col int) gfx.Tile {
		if row == 0 && col%3 != 0 {
			return gfx.Tile{Index: tileStripe}
		}
		return gfx.Tile{}
	})
	if err != nil {
		return err
	}
	if err := e.SetLayer(0, ts, stripes); err != nil {
		return err
	}
	if err := e.SetLayerClip(0, 0, e.Height()-32, e.Width(), e.Height()); err != nil {
		return err
	}

	ss, err := newSceneSpriteset(palette)
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if err := e.ConfigSprite(i, ss, gfx.FlagRotate); err != nil {
			return err
		}
		if err := e.EnableSpriteMasking(i, true); err != nil {
			return err
		}
	}
	e.SetSpritesMaskRegion(e.Height()/3, e.Height()/2)

	s.amplitude = newPingPong(0, 12, 2, ease.InOutQuad)
	e.SetRasterCallback(func(line int) {
		shift := int(16 * math.Sin(float64(line+s.frame)/6))
		_ = e.SetLayerPosition(0, s.frame*2+shift, line%8)
	})
	return nil
}

func (s *rasterScene) Update(e *video.Engine, frame int) {
	s.frame = frame
	amp := float64(s.amplitude.Step())
	w, h := e.Width(), e.Height()
	for y := 0; y < h; y++ {
		dx := int(amp * math.Sin(float64(y+frame*2)/10))
		for x := 0; x < w; x++ {
			s.table[y*w+x] = video.PixelMap{Dx: int16(x + dx), Dy: int16(y)}
		}
	}

	for i := 0; i < 3; i++ {
		y := int(float64(h-16) * (0.5 + 0.5*math.Sin(float64(frame+i*20)/15)))
		_ = e.SetSpritePosition(i, 40+i*48, y)
	}
}
