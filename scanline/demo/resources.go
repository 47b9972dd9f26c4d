package demo

import (
	"math"

	"github.com/valerio/go-scanline/scanline/gfx"
)

type rgb struct{ r, g, b uint8 }

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// rampPalette fills entries [start, start+n) with a linear ramp between
// two colors. Entry 0 stays black since it is the transparent index.
func rampPalette(p *gfx.Palette, start, n int, from, to rgb) error {
	for i := 0; i < n; i++ {
		t := float64(i) / float64(max(n-1, 1))
		if err := p.SetColor(start+i, lerp8(from.r, to.r, t), lerp8(from.g, to.g, t), lerp8(from.b, to.b, t)); err != nil {
			return err
		}
	}
	return nil
}

// newScenePalette returns a 256-color palette split into four 64-entry
// ramps: sky, ground, foliage and fire.
func newScenePalette() (*gfx.Palette, error) {
	p, err := gfx.NewPalette(256)
	if err != nil {
		return nil, err
	}
	ramps := []struct{ from, to rgb }{
		{rgb{16, 24, 64}, rgb{160, 200, 255}},
		{rgb{48, 24, 8}, rgb{200, 150, 90}},
		{rgb{0, 48, 16}, rgb{120, 240, 96}},
		{rgb{96, 0, 0}, rgb{255, 240, 64}},
	}
	for i, r := range ramps {
		if err := rampPalette(p, i*64+1, 63, r.from, r.to); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Tile kinds of the procedural tileset.
const (
	tileBrick = iota + 1
	tileGrass
	tileCloud
	tileStripe
	numTiles = tileStripe
)

// newSceneTileset draws numTiles procedural 8×8 tiles. Cloud and grass
// tiles keep transparent pixels, bricks and stripes are opaque.
func newSceneTileset(p *gfx.Palette) (*gfx.Tileset, error) {
	const size = 8
	ts, err := gfx.NewTileset(numTiles, size, size, p)
	if err != nil {
		return nil, err
	}
	data := make([]uint8, size*size)
	for entry := 1; entry <= numTiles; entry++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				data[y*size+x] = tilePattern(entry, x, y)
			}
		}
		if err := ts.SetPixels(entry, data, size); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

func tilePattern(entry, x, y int) uint8 {
	switch entry {
	case tileBrick:
		if y%4 == 3 || (x+(y/4)*4)%8 == 0 {
			return 70
		}
		return uint8(90 + x + y)
	case tileGrass:
		if y < (x*3)%5 {
			return 0
		}
		return uint8(140 + y*4)
	case tileCloud:
		dx, dy := x-4, y-4
		if dx*dx+dy*dy > 12 {
			return 0
		}
		return uint8(50 + 2*(dx*dx+dy*dy))
	default:
		return uint8(200 + ((x + y) % 4 * 12))
	}
}

// newSceneTilemap builds a rows×cols map where cell picks each tile.
func newSceneTilemap(ts *gfx.Tileset, rows, cols int, cell func(row, col int) gfx.Tile) (*gfx.Tilemap, error) {
	tiles := make([]gfx.Tile, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tiles[r*cols+c] = cell(r, c)
		}
	}
	return gfx.NewTilemap(rows, cols, tiles, 0, ts)
}

// newPlasmaBitmap renders a classic sine plasma into a w×h bitmap.
func newPlasmaBitmap(p *gfx.Palette, w, h int) (*gfx.Bitmap, error) {
	bm, err := gfx.NewBitmap(w, h, p)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x), float64(y)
			v := math.Sin(fx/16) + math.Sin(fy/8) + math.Sin((fx+fy)/24) + math.Sin(math.Hypot(fx-float64(w)/2, fy-float64(h)/2)/8)
			// v is in [-4, 4]
			bm.Set(x, y, uint8(1+int((v+4)/8*254)))
		}
	}
	return bm, nil
}

// Sprite pictures of the procedural spriteset.
const (
	pictureShip = iota
	pictureOrb
)

// newSceneSpriteset draws a 16×16 ship and a 16×16 orb side by side.
func newSceneSpriteset(p *gfx.Palette) (*gfx.Spriteset, error) {
	const size = 16
	atlas, err := gfx.NewBitmap(size*2, size, p)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// ship: an arrow pointing right
			if x >= 2 && abs(y-size/2) <= (x-2)/2 && x < size-1 {
				atlas.Set(x, y, uint8(130+x*2))
			}
			dx, dy := x-size/2, y-size/2
			if dx*dx+dy*dy < 40 {
				atlas.Set(size+x, y, uint8(250-dx*dx-dy*dy))
			}
		}
	}
	return gfx.NewSpriteset(atlas, []gfx.SpriteData{
		{Name: "ship", X: 0, Y: 0, W: size, H: size},
		{Name: "orb", X: size, Y: 0, W: size, H: size},
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
