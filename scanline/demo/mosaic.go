package demo

import (
	"github.com/tanema/gween/ease"

	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/gfx"
	"github.com/valerio/go-scanline/scanline/video"
)

const numOrbs = 2

// mosaicScene pixelates a brick wall with a pulsing mosaic, tints a
// window over it, scatters tile objects on a second layer and bounces
// two orbs into each other, lighting them up while they collide.
type mosaicScene struct {
	block *pingPong
	orbs  [numOrbs]*pingPong
}

func (s *mosaicScene) Name() string { return "mosaic" }

func (s *mosaicScene) Setup(e *video.Engine) error {
	palette, err := newScenePalette()
	if err != nil {
		return err
	}
	ts, err := newSceneTileset(palette)
	if err != nil {
		return err
	}
	wall, err := newSceneTilemap(ts, 32, 64, func(row, col int) gfx.Tile {
		if (row+col)%5 == 0 {
			return gfx.Tile{Index: tileStripe}
		}
		return gfx.Tile{Index: tileBrick}
	})
	if err != nil {
		return err
	}
	if err := e.SetLayer(1, ts, wall); err != nil {
		return err
	}

	w, h := e.Width(), e.Height()
	if err := e.SetLayerWindow(1, w/4, h/4, w*3/4, h*3/4, false); err != nil {
		return err
	}
	if err := e.SetLayerWindowColor(1, 0, 0, 64, blit.BlendMix50); err != nil {
		return err
	}

	objects := gfx.NewObjectList()
	for i := 0; i < 24; i++ {
		gid := tileCloud
		if i%3 == 0 {
			gid = tileGrass
		}
		x, y := (i*53)%w, (i*37)%h
		if err := objects.AddTileObject(i, gid, 0, x, y, ts); err != nil {
			return err
		}
	}
	if err := e.SetLayerObjects(0, objects, ts); err != nil {
		return err
	}

	ss, err := newSceneSpriteset(palette)
	if err != nil {
		return err
	}
	for i := 0; i < numOrbs; i++ {
		if err := e.ConfigSprite(i, ss, 0); err != nil {
			return err
		}
		if err := e.SetSpritePicture(i, pictureOrb); err != nil {
			return err
		}
		if err := e.EnableSpriteCollision(i, true); err != nil {
			return err
		}
	}
	// orbs travel toward each other and meet in the middle
	s.orbs[0] = newPingPong(0, float32(w/2), 2, ease.OutQuad)
	s.orbs[1] = newPingPong(float32(w-16), float32(w/2-8), 2, ease.OutQuad)
	s.block = newPingPong(1, 12, 3, ease.InOutSine)
	return nil
}

func (s *mosaicScene) Update(e *video.Engine, _ int) {
	size := int(s.block.Step())
	_ = e.SetLayerMosaic(1, size, size)

	y := e.Height()/2 - 8
	for i, orb := range s.orbs {
		_ = e.SetSpritePosition(i, int(orb.Step()), y)

		// collision flags describe the previous frame
		mode := blit.BlendNone
		if e.SpriteCollision(i) {
			mode = blit.BlendAdd
		}
		_ = e.SetSpriteBlendMode(i, mode)
	}
}
