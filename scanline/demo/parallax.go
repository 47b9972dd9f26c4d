package demo

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/video"
)

const (
	layerFront = 0
	layerBack  = 1
)

// parallaxScene scrolls two tiled layers at different speeds through the
// world position, waves the back layer with column offsets, paints a sky
// gradient from the raster callback and flies a few ships on eased paths.
type parallaxScene struct {
	camera  *pingPong
	ships   []*pingPong
	columns []int
	sky     []rgb
}

func (s *parallaxScene) Name() string { return "parallax" }

func (s *parallaxScene) Setup(e *video.Engine) error {
	palette, err := newScenePalette()
	if err != nil {
		return err
	}
	ts, err := newSceneTileset(palette)
	if err != nil {
		return err
	}

	const rows, cols = 32, 64
	front, err := newSceneTilemap(ts, rows, cols, func(row, col int) gfx.Tile {
		ground := rows - 6 + int(2*math.Sin(float64(col)/4))
		switch {
		case row == ground:
			return gfx.Tile{Index: tileGrass}
		case row > ground:
			// the lowest rows hide sprites that fly behind them
			var flags gfx.Flags
			if row >= rows-2 {
				flags = gfx.FlagPriority
			}
			if col%2 == 1 {
				flags |= gfx.FlagFlipX
			}
			return gfx.Tile{Index: tileBrick, Flags: flags}
		}
		return gfx.Tile{}
	})
	if err != nil {
		return err
	}
	back, err := newSceneTilemap(ts, rows, cols, func(row, col int) gfx.Tile {
		if (row*7+col*3)%11 == 0 {
			return gfx.Tile{Index: tileCloud}
		}
		return gfx.Tile{}
	})
	if err != nil {
		return err
	}

	if err := e.SetLayer(layerFront, ts, front); err != nil {
		return err
	}
	if err := e.SetLayer(layerBack, ts, back); err != nil {
		return err
	}
	if err := e.SetLayerParallaxFactor(layerFront, 1, 1); err != nil {
		return err
	}
	if err := e.SetLayerParallaxFactor(layerBack, 0.5, 0.25); err != nil {
		return err
	}
	if err := e.SetLayerBlendMode(layerBack, blit.BlendAdd); err != nil {
		return err
	}

	s.columns = make([]int, e.Width()/ts.Width()+2)
	if err := e.SetLayerColumnOffset(layerBack, s.columns); err != nil {
		return err
	}

	ss, err := newSceneSpriteset(palette)
	if err != nil {
		return err
	}
	s.ships = nil
	for i := 0; i < 4; i++ {
		var flags gfx.Flags
		if i%2 == 1 {
			flags = gfx.FlagFlipX
		}
		if err := e.ConfigSprite(i, ss, flags); err != nil {
			return err
		}
		if err := e.SetSpritePicture(i, pictureShip); err != nil {
			return err
		}
		s.ships = append(s.ships, newPingPong(0, float32(e.Width()-16), 2+float32(i)/2, ease.InOutSine))
	}

	s.camera = newPingPong(0, float32(cols*ts.Width()), 8, ease.InOutQuad)
	s.sky = make([]rgb, e.Height())
	for y := range s.sky {
		t := float64(y) / float64(len(s.sky))
		s.sky[y] = rgb{lerp8(20, 255, t), lerp8(40, 140, t), lerp8(120, 60, t)}
	}
	e.SetRasterCallback(func(line int) {
		c := s.sky[line]
		e.SetBGColor(c.r, c.g, c.b)
	})
	return nil
}

func (s *parallaxScene) Update(e *video.Engine, frame int) {
	e.SetWorldPosition(int(s.camera.Step()), 0)

	for i := range s.columns {
		s.columns[i] = int(3 * math.Sin(float64(frame)/10+float64(i)/2))
	}

	for i, ship := range s.ships {
		x := ship.Step()
		y := 24 + i*40 + int(8*math.Sin(float64(frame+i*13)/12))
		_ = e.SetSpritePosition(i, int(x), y)
	}
}
